// Package api implements the hosted RiskScope REST API.
// It provides evaluation and read endpoints backed by Postgres and blob storage.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/riskscope/riskscope/internal/evaluation"
	"github.com/riskscope/riskscope/internal/store"
)

// reportStore is the persistence surface the read endpoints need.
// *store.Service satisfies it.
type reportStore interface {
	GetReport(ctx context.Context, reportID string) (*store.ReportRow, error)
	ListReports(ctx context.Context, limit int) ([]store.ReportRow, error)
	ListResults(ctx context.Context, reportID, riskStatus string) ([]store.ResultRow, error)
}

// Handler is the top-level API handler for the hosted RiskScope service.
type Handler struct {
	store       reportStore
	evaluations *evaluation.Service
	cache       *ReportCache
}

// NewHandler creates a new API handler.
func NewHandler(st reportStore, evaluations *evaluation.Service, cache *ReportCache) *Handler {
	if cache == nil {
		cache = NewReportCacheFromEnv()
	}
	return &Handler{
		store:       st,
		evaluations: evaluations,
		cache:       cache,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints (auth-protected)
	mux.HandleFunc("POST /api/v1/evaluations", h.handleEvaluate)

	// Read endpoints
	mux.HandleFunc("GET /api/v1/reports", h.handleListReports)
	mux.HandleFunc("GET /api/v1/reports/{reportID}", h.handleGetReport)
	mux.HandleFunc("GET /api/v1/reports/{reportID}/high-risk", h.handleHighRisk)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
