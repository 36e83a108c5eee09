// Package web provides the JSON API server that charting front-ends
// consume. It exposes the query catalog over a dashboard manager; all
// rendering lives on the client side.
package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/logging"
)

// Server is the analytics API HTTP server.
type Server struct {
	manager *dashboard.Manager
	router  chi.Router
}

// NewServer creates an API server over the given dashboard manager.
func NewServer(manager *dashboard.Manager, allowedOrigins []string) *Server {
	s := &Server{manager: manager}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger)
	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/boroughs", s.handleBoroughStats)
		r.Get("/rooms", s.handleRoomTypeStats)
		r.Get("/price-histogram", s.handlePriceHistogram)
		r.Get("/hosts/top", s.handleTopHosts)
		r.Get("/hosts/categories", s.handleHostCategories)
		r.Get("/hosts/entire-home", s.handleEntireHomeByHostSize)
		r.Get("/value/top", s.handleTopValue)
		r.Get("/value/boroughs", s.handleValueByBorough)
		r.Get("/commercial", s.handleCommercial)
		r.Get("/roi", s.handleROI)
		r.Get("/trend/reviews", s.handleReviewTrend)
		r.Get("/neighbourhoods", s.handleNeighbourhoods)
		r.Get("/map", s.handleMapSample)
		r.Get("/quality", s.handleQuality)
		r.Get("/quality/missing", s.handleMissingData)
		r.Get("/uncertainty", s.handleUncertainty)
		r.Get("/meta", s.handleMeta)
		r.Get("/filters", s.handleGetFilters)
		r.Post("/filters", s.handleApplyFilters)
		r.Post("/export", s.handleExport)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the API server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting analytics API on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]any{
		"status": "ok",
		"loaded": s.manager.Loaded(),
	}, http.StatusOK)
}
