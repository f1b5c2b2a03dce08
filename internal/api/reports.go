package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/riskscope/riskscope/internal/evaluation"
	"github.com/riskscope/riskscope/pkg/scoring"
)

// handleEvaluate runs the evaluation pipeline for a submitted batch.
func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluation.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rep, err := h.evaluations.Process(r.Context(), req)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidArgument) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("evaluate error: %v", err)
		writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}

	h.cache.Put(rep.ID, rep)
	writeJSON(w, http.StatusCreated, rep)
}

// handleListReports lists persisted report metadata, newest first.
func (h *Handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	rows, err := h.store.ListReports(r.Context(), limit)
	if err != nil {
		log.Printf("list reports error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reports": rows})
}

// handleGetReport returns a full report, cache first, then the archive.
func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	reportID := r.PathValue("reportID")

	rep := h.cache.Get(reportID)
	if rep == nil {
		loaded, err := h.evaluations.GetReport(r.Context(), reportID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeError(w, http.StatusNotFound, "report not found")
				return
			}
			log.Printf("get report %s: %v", reportID, err)
			writeError(w, http.StatusInternalServerError, "failed to load report")
			return
		}
		rep = loaded
		h.cache.Put(reportID, rep)
	}

	writeJSON(w, http.StatusOK, rep)
}

// handleHighRisk returns a report's high-risk results in stored order.
func (h *Handler) handleHighRisk(w http.ResponseWriter, r *http.Request) {
	reportID := r.PathValue("reportID")

	if rep := h.cache.Get(reportID); rep != nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"report_id": reportID,
			"results":   scoring.FilterHighRisk(rep.Results),
		})
		return
	}

	// ListResults returns zero rows for unknown reports, so check existence
	// first: a missing report is 404, an all-low-risk report is an empty 200.
	if _, err := h.store.GetReport(r.Context(), reportID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "report not found")
			return
		}
		log.Printf("get report %s: %v", reportID, err)
		writeError(w, http.StatusInternalServerError, "failed to load report")
		return
	}

	rows, err := h.store.ListResults(r.Context(), reportID, scoring.HighRisk.String())
	if err != nil {
		log.Printf("list high-risk results %s: %v", reportID, err)
		writeError(w, http.StatusInternalServerError, "failed to load results")
		return
	}

	results := make([]scoring.EvaluationResult, 0, len(rows))
	for _, row := range rows {
		tier, err := scoring.ParseRiskTier(row.RiskStatus)
		if err != nil {
			log.Printf("report %s result %d: %v", reportID, row.CustomerID, err)
			continue
		}
		results = append(results, scoring.EvaluationResult{
			CustomerID:  row.CustomerID,
			Name:        row.Name,
			CreditScore: row.CreditScore,
			RiskTier:    tier,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"report_id": reportID,
		"results":   results,
	})
}
