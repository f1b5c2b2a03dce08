package feed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
)

func computeHMAC(payload, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := []byte("feed-secret-123")
	payload := []byte(`{"source":"bureau-a"}`)

	tests := []struct {
		name      string
		payload   []byte
		signature string
		secret    []byte
		wantErr   bool
	}{
		{
			name:      "valid signature",
			payload:   payload,
			signature: computeHMAC(payload, secret),
			secret:    secret,
			wantErr:   false,
		},
		{
			name:      "wrong secret",
			payload:   payload,
			signature: computeHMAC(payload, []byte("wrong-secret")),
			secret:    secret,
			wantErr:   true,
		},
		{
			name:      "tampered payload",
			payload:   []byte(`{"source":"bureau-b"}`),
			signature: computeHMAC(payload, secret),
			secret:    secret,
			wantErr:   true,
		},
		{
			name:      "missing sha256= prefix",
			payload:   payload,
			signature: "not-a-valid-sig",
			secret:    secret,
			wantErr:   true,
		},
		{
			name:      "invalid hex after prefix",
			payload:   payload,
			signature: "sha256=zzzz",
			secret:    secret,
			wantErr:   true,
		},
		{
			name:      "empty signature",
			payload:   payload,
			signature: "",
			secret:    secret,
			wantErr:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := VerifySignature(tc.payload, tc.signature, tc.secret)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseBatchEvent(t *testing.T) {
	payload := []byte(`{
		"source": "bureau-a",
		"customers": [
			{"CustomerId": 1, "Name": "Alice", "PaymentHistory": 90, "CreditUtilization": 40, "AgeOfCreditHistory": 5}
		]
	}`)

	ev, err := ParseBatchEvent(payload)
	if err != nil {
		t.Fatalf("ParseBatchEvent: %v", err)
	}
	if ev.Source != "bureau-a" {
		t.Errorf("Source = %q, want bureau-a", ev.Source)
	}
	if len(ev.Customers) != 1 || ev.Customers[0].Name != "Alice" {
		t.Errorf("Customers = %+v", ev.Customers)
	}
}

func TestParseBatchEventMissingSource(t *testing.T) {
	for _, payload := range []string{
		`{"customers":[]}`,
		`{"source":"  ","customers":[]}`,
	} {
		if _, err := ParseBatchEvent([]byte(payload)); err == nil {
			t.Errorf("expected error for payload %s", payload)
		}
	}
}

func TestParseBatchEventMalformed(t *testing.T) {
	if _, err := ParseBatchEvent([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestBatchEventRoundTrip(t *testing.T) {
	ev := BatchEvent{Source: "bureau-a"}
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	parsed, err := ParseBatchEvent(data)
	if err != nil {
		t.Fatalf("ParseBatchEvent: %v", err)
	}
	if parsed.Source != ev.Source {
		t.Errorf("Source = %q, want %q", parsed.Source, ev.Source)
	}
}
