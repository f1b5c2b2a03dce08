// Package feed handles signed batch submissions from partner data feeds.
package feed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/riskscope/riskscope/pkg/customer"
)

// VerifySignature validates the X-Feed-Signature-256 header against the payload.
func VerifySignature(payload []byte, signature string, secret []byte) error {
	if !strings.HasPrefix(signature, "sha256=") {
		return fmt.Errorf("invalid signature format")
	}
	sig, err := hex.DecodeString(signature[7:])
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := mac.Sum(nil)

	if !hmac.Equal(sig, expected) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

// BatchEvent is the payload a partner feed submits for evaluation.
type BatchEvent struct {
	Source    string             `json:"source"`
	Customers []customer.Profile `json:"customers"`
}

// ParseBatchEvent decodes and sanity-checks a batch submission.
func ParseBatchEvent(payload []byte) (*BatchEvent, error) {
	var ev BatchEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("parse batch event: %w", err)
	}
	if strings.TrimSpace(ev.Source) == "" {
		return nil, fmt.Errorf("batch event missing source")
	}
	return &ev, nil
}
