package feed

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerRejectsBadSignature(t *testing.T) {
	h := NewHandler([]byte("secret"), nil)

	body := []byte(`{"source":"bureau-a","customers":[]}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/feeds/batches", bytes.NewReader(body))
	req.Header.Set("X-Feed-Signature-256", "sha256=deadbeef")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandlerRejectsWrongMethod(t *testing.T) {
	h := NewHandler([]byte("secret"), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/feeds/batches", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandlerRejectsInvalidBatch(t *testing.T) {
	secret := []byte("secret")
	h := NewHandler(secret, nil)

	// Validly signed but missing the source field.
	body := []byte(`{"customers":[]}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/feeds/batches", bytes.NewReader(body))
	req.Header.Set("X-Feed-Signature-256", computeHMAC(body, secret))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
