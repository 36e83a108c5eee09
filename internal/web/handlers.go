package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bnbstat/internal/export"
	"bnbstat/internal/filter"
	"bnbstat/internal/listing"
	"bnbstat/internal/query"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// intParam reads an integer query parameter, falling back to def when
// absent or malformed.
func intParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.SummaryStats(s.manager.View()), http.StatusOK)
}

func (s *Server) handleBoroughStats(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.StatsByBorough(s.manager.View()), http.StatusOK)
}

func (s *Server) handleRoomTypeStats(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.StatsByRoomType(s.manager.View()), http.StatusOK)
}

func (s *Server) handlePriceHistogram(w http.ResponseWriter, r *http.Request) {
	bins := intParam(r, "bins", query.DefaultHistogramBins)
	apiJSON(w, query.PriceHistogram(s.manager.View(), bins), http.StatusOK)
}

func (s *Server) handleTopHosts(w http.ResponseWriter, r *http.Request) {
	n := intParam(r, "n", 10)
	apiJSON(w, query.TopHosts(s.manager.View(), n), http.StatusOK)
}

func (s *Server) handleHostCategories(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.HostCategoryDistribution(s.manager.View()), http.StatusOK)
}

func (s *Server) handleEntireHomeByHostSize(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.EntireHomeByHostSize(s.manager.View()), http.StatusOK)
}

func (s *Server) handleTopValue(w http.ResponseWriter, r *http.Request) {
	n := intParam(r, "n", 10)
	apiJSON(w, query.TopValueListings(s.manager.View(), n), http.StatusOK)
}

func (s *Server) handleValueByBorough(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.ValueScoreByBorough(s.manager.View()), http.StatusOK)
}

func (s *Server) handleCommercial(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.CompareCommercial(s.manager.View()), http.StatusOK)
}

func (s *Server) handleROI(w http.ResponseWriter, r *http.Request) {
	n := intParam(r, "n", 10)
	apiJSON(w, query.ROIBySegment(s.manager.View(), n), http.StatusOK)
}

func (s *Server) handleReviewTrend(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.MonthlyReviewTrend(s.manager.View()), http.StatusOK)
}

func (s *Server) handleNeighbourhoods(w http.ResponseWriter, r *http.Request) {
	boroughs := r.URL.Query()["borough"]
	apiJSON(w, s.manager.Dataset().Neighbourhoods(boroughs), http.StatusOK)
}

func (s *Server) handleMapSample(w http.ResponseWriter, r *http.Request) {
	n := intParam(r, "n", query.DefaultSampleSize)
	sample := query.MapSample(s.manager.View(), n)

	type point struct {
		ID        int64   `json:"id"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Price     float64 `json:"price"`
		RoomType  string  `json:"room_type"`
	}
	points := make([]point, 0, sample.Len())
	for i := 0; i < sample.Len(); i++ {
		l := sample.Row(i)
		points = append(points, point{
			ID:        l.ID,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
			Price:     l.Price,
			RoomType:  string(l.RoomType),
		})
	}
	apiJSON(w, points, http.StatusOK)
}

func (s *Server) handleQuality(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.DataQualityScore(s.manager.View()), http.StatusOK)
}

func (s *Server) handleMissingData(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.MissingDataStats(s.manager.View()), http.StatusOK)
}

func (s *Server) handleUncertainty(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, query.UncertaintyStats(s.manager.View()), http.StatusOK)
}

// handleMeta serves the vocabulary filter UIs need to build controls.
func (s *Server) handleMeta(w http.ResponseWriter, r *http.Request) {
	ds := s.manager.Dataset()
	categories := make([]string, 0, 4)
	for _, c := range listing.HostCategories() {
		categories = append(categories, string(c))
	}
	apiJSON(w, map[string]any{
		"boroughs":        ds.Boroughs(),
		"room_types":      ds.RoomTypes(),
		"host_categories": categories,
		"rows":            ds.Len(),
	}, http.StatusOK)
}

func (s *Server) handleGetFilters(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, s.manager.Spec(), http.StatusOK)
}

// handleApplyFilters applies a filter spec. An empty result is not an
// error: the previous view stays active and the response says so.
func (s *Server) handleApplyFilters(w http.ResponseWriter, r *http.Request) {
	if !s.manager.Loaded() {
		apiError(w, "no dataset loaded", http.StatusConflict)
		return
	}

	var spec filter.Spec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		apiError(w, "invalid filter spec: "+err.Error(), http.StatusBadRequest)
		return
	}

	err := s.manager.ApplyFilters(spec)
	if err == filter.ErrEmptyResult {
		apiJSON(w, map[string]any{
			"empty_result": true,
			"count":        s.manager.View().Len(),
		}, http.StatusOK)
		return
	}
	if err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]any{
		"empty_result": false,
		"count":        s.manager.View().Len(),
	}, http.StatusOK)
}

// exportRequest is the POST /api/export body.
type exportRequest struct {
	Path    string   `json:"path"`
	Columns []string `json:"columns,omitempty"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if !s.manager.Loaded() {
		apiError(w, "no dataset loaded", http.StatusConflict)
		return
	}

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid export request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		apiError(w, "path is required", http.StatusBadRequest)
		return
	}

	view := s.manager.View()
	if err := export.CSV(view, req.Path, req.Columns); err != nil {
		apiError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]any{
		"path": req.Path,
		"rows": view.Len(),
	}, http.StatusOK)
}
