package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aesthetics360/planstudio/internal/application/services"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/i18n"
	apperrors "github.com/aesthetics360/planstudio/pkg/errors"
)

// defaultTenantID is used when the request carries no tenant header.
const defaultTenantID = "default"

// CatalogHandler handles the settings surface: loading, saving, and
// resetting the tenant's catalog document.
type CatalogHandler struct {
	catalogs *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogs *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs}
}

// GetCatalog handles GET /api/catalog
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.Load(r.Context(), tenantID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, catalog)
}

// SaveCatalog handles PUT /api/catalog
func (h *CatalogHandler) SaveCatalog(w http.ResponseWriter, r *http.Request) {
	var catalog entities.CatalogDefinition
	if err := json.NewDecoder(r.Body).Decode(&catalog); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.catalogs.Save(r.Context(), tenantID(r), &catalog); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// ResetCatalog handles POST /api/catalog/reset
func (h *CatalogHandler) ResetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.Reset(r.Context(), tenantID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, catalog)
}

// GetDefaults handles GET /api/catalog/defaults
func (h *CatalogHandler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, entities.DefaultCatalog())
}

// GetLanguages handles GET /api/languages
func (h *CatalogHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"languages": i18n.Languages(),
	})
}

func tenantID(r *http.Request) string {
	if tenant := r.Header.Get("X-Tenant-ID"); tenant != "" {
		return tenant
	}
	return defaultTenantID
}

// language resolves the request language, defaulting to English.
func language(r *http.Request) string {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = r.Header.Get("Accept-Language")
	}
	if !i18n.Supported(lang) {
		return entities.LanguageEN
	}
	return lang
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithServiceError maps application errors to HTTP statuses.
func respondWithServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		respondWithError(w, appErr.HTTPStatus(), appErr.Message)
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
