package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"healthcare-assistant/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	if string(b) != `"2025-12-31"` {
		t.Errorf("expected %q, got %s", `"2025-12-31"`, b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2025, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if string(b) != `"2025-05-01T15:30:00Z"` {
		t.Errorf("expected RFC3339 string, got %s", b)
	}
}
