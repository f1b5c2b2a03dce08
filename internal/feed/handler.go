package feed

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/riskscope/riskscope/internal/evaluation"
	"github.com/riskscope/riskscope/pkg/scoring"
)

// Handler processes incoming signed feed submissions.
type Handler struct {
	secret      []byte
	evaluations *evaluation.Service
}

// NewHandler creates a new feed Handler.
func NewHandler(secret []byte, evaluations *evaluation.Service) *Handler {
	return &Handler{secret: secret, evaluations: evaluations}
}

// ServeHTTP handles incoming feed requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 10<<20)) // 10 MB limit
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("X-Feed-Signature-256")
	if err := VerifySignature(body, signature, h.secret); err != nil {
		log.Printf("feed signature verification failed: %v", err)
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	ev, err := ParseBatchEvent(body)
	if err != nil {
		log.Printf("feed parse error: %v", err)
		http.Error(w, "invalid batch", http.StatusBadRequest)
		return
	}

	rep, err := h.evaluations.Process(r.Context(), evaluation.Request{
		Source:    ev.Source,
		Customers: ev.Customers,
	})
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidArgument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("feed batch processing failed: %v", err)
		http.Error(w, "processing failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "accepted",
		"report_id": rep.ID,
	})
}
