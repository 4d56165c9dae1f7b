package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aesthetics360/planstudio/internal/application/services"
	"github.com/aesthetics360/planstudio/internal/document"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/internal/infrastructure/observability"
)

// ExportHandler renders the treatment plan document and streams it back
// as a PDF download.
type ExportHandler struct {
	catalogs *services.CatalogService
	exporter *document.Exporter
	metrics  *observability.Metrics
}

// NewExportHandler creates a new export handler. Metrics may be nil.
func NewExportHandler(catalogs *services.CatalogService, exporter *document.Exporter, metrics *observability.Metrics) *ExportHandler {
	return &ExportHandler{catalogs: catalogs, exporter: exporter, metrics: metrics}
}

type exportRequest struct {
	Plan     *entities.Plan `json:"plan"`
	Language string         `json:"language"`
}

// ExportPlan handles POST /api/plans/export
func (h *ExportHandler) ExportPlan(w http.ResponseWriter, r *http.Request) {
	var payload exportRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Plan == nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	catalog, err := h.catalogs.Load(r.Context(), tenantID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	lang := payload.Language
	if lang == "" {
		lang = language(r)
	}

	// Render into a buffer so a failed export never sends a truncated
	// document to the client
	var buf bytes.Buffer
	start := time.Now()
	err = h.exporter.Export(&buf, payload.Plan, catalog, lang)
	if h.metrics != nil {
		observability.RecordExportMetric(r.Context(), h.metrics, time.Since(start), err)
	}
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	filename := document.ExportFilename(payload.Plan.Patient.Name)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
