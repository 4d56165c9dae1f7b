package routes

import (
	"net/http"

	"github.com/aesthetics360/planstudio/internal/api/handlers"
	"github.com/aesthetics360/planstudio/internal/api/middleware"
	"github.com/aesthetics360/planstudio/internal/infrastructure/observability"
)

// Router holds all route handlers

type Router struct {
	mux *http.ServeMux

	catalogHandler *handlers.CatalogHandler

	planHandler *handlers.PlanHandler

	editorHandler *handlers.EditorHandler

	suggestionHandler *handlers.SuggestionHandler

	exportHandler *handlers.ExportHandler

	sseHandler *handlers.SSEHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router

func NewRouter(

	catalogHandler *handlers.CatalogHandler,

	planHandler *handlers.PlanHandler,

	editorHandler *handlers.EditorHandler,

	suggestionHandler *handlers.SuggestionHandler,

	exportHandler *handlers.ExportHandler,

	sseHandler *handlers.SSEHandler,

	cacheMiddleware *middleware.CacheMiddleware,

	metrics *observability.Metrics,

) *Router {

	return &Router{

		mux: http.NewServeMux(),

		catalogHandler: catalogHandler,

		planHandler: planHandler,

		editorHandler: editorHandler,

		suggestionHandler: suggestionHandler,

		exportHandler: exportHandler,

		sseHandler: sseHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}

}

// SetupRoutes configures all application routes

func (r *Router) SetupRoutes() http.Handler {

	// Health check endpoint

	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {

		w.WriteHeader(http.StatusOK)

		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}

	})

	// Catalog (settings) endpoints

	r.mux.HandleFunc("GET /api/catalog", r.catalogHandler.GetCatalog)

	r.mux.HandleFunc("PUT /api/catalog", r.catalogHandler.SaveCatalog)

	r.mux.HandleFunc("POST /api/catalog/reset", r.catalogHandler.ResetCatalog)

	r.mux.HandleFunc("GET /api/catalog/defaults", r.catalogHandler.GetDefaults)

	r.mux.HandleFunc("GET /api/languages", r.catalogHandler.GetLanguages)

	// Plan composition endpoints

	r.mux.HandleFunc("GET /api/templates", r.planHandler.ListTemplates)

	r.mux.HandleFunc("POST /api/plans", r.planHandler.CreatePlan)

	r.mux.HandleFunc("POST /api/plans/phases", r.planHandler.AddPhase)
	r.mux.HandleFunc("POST /api/plans/phases/remove", r.planHandler.RemovePhase)

	r.mux.HandleFunc("POST /api/plans/treatments", r.planHandler.AddTreatment)
	r.mux.HandleFunc("POST /api/plans/treatments/save", r.planHandler.SaveTreatment)
	r.mux.HandleFunc("POST /api/plans/treatments/remove", r.planHandler.RemoveTreatment)
	r.mux.HandleFunc("POST /api/plans/treatments/move", r.planHandler.MoveTreatment)

	r.mux.HandleFunc("POST /api/plans/reorder", r.planHandler.Reorder)

	r.mux.HandleFunc("POST /api/plans/totals", r.planHandler.Totals)

	// Document export endpoint

	r.mux.HandleFunc("POST /api/plans/export", r.exportHandler.ExportPlan)

	// Treatment editor endpoints

	r.mux.HandleFunc("POST /api/editor/category", r.editorHandler.SelectCategory)
	r.mux.HandleFunc("POST /api/editor/treatment", r.editorHandler.SelectTreatment)
	r.mux.HandleFunc("POST /api/editor/quantity", r.editorHandler.SetQuantity)
	r.mux.HandleFunc("POST /api/editor/price-per-unit", r.editorHandler.SetPricePerUnit)
	r.mux.HandleFunc("POST /api/editor/save", r.editorHandler.Save)
	r.mux.HandleFunc("POST /api/editor/cancel", r.editorHandler.Cancel)
	r.mux.HandleFunc("GET /api/editor/search", r.editorHandler.Search)
	r.mux.HandleFunc("POST /api/editor/instructions", r.editorHandler.GenerateInstructions)

	// AI suggestion endpoint
	if r.suggestionHandler != nil {
		r.mux.HandleFunc("POST /api/suggestions/plan", r.suggestionHandler.SuggestPlan)
	}

	// Catalog change stream for open editor sessions
	if r.sseHandler != nil {
		r.mux.HandleFunc("GET /api/stream/catalog", r.sseHandler.StreamCatalogUpdates)
	}

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
