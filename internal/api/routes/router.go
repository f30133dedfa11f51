package routes

import (
	"net/http"

	"github.com/Erudhir101/Tabela-Particular/internal/api/handlers"
	"github.com/Erudhir101/Tabela-Particular/internal/api/middleware"
	"github.com/Erudhir101/Tabela-Particular/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	priceListHandler *handlers.PriceListHandler
	quoteHandler     *handlers.QuoteHandler
	analyzeHandler   *handlers.AnalyzeHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	priceListHandler *handlers.PriceListHandler,
	quoteHandler *handlers.QuoteHandler,
	analyzeHandler *handlers.AnalyzeHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		priceListHandler: priceListHandler,
		quoteHandler:     quoteHandler,
		analyzeHandler:   analyzeHandler,

		metrics: metrics,
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

	// Price list endpoints
	r.mux.HandleFunc("GET /api/price-list", r.priceListHandler.GetPriceList)
	r.mux.HandleFunc("PUT /api/price-list", r.priceListHandler.SavePriceList)
	r.mux.HandleFunc("POST /api/price-list/rows", r.priceListHandler.AppendRow)
	r.mux.HandleFunc("DELETE /api/price-list/rows", r.priceListHandler.DeleteRows)

	// Procedure search endpoint
	r.mux.HandleFunc("GET /api/procedures", r.priceListHandler.ListProcedures)

	// Quote endpoints
	r.mux.HandleFunc("POST /api/quotes", r.quoteHandler.CreateQuote)
	r.mux.HandleFunc("POST /api/quotes/pdf", r.quoteHandler.QuotePDF)

	// Order analysis endpoint
	r.mux.HandleFunc("POST /api/analyze", r.analyzeHandler.Analyze)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	// CORS wraps everything so preflights never reach the handlers
	handler = middleware.CORSMiddleware(handler)

	return handler
}
