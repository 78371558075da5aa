package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"quicksched/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 1, 24, 9, 15, 0, 0, time.UTC)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2026-01-24"` {
		t.Errorf("Date marshaled as %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 1, 24, 9, 15, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	// Zone-naive on purpose: no offset suffix.
	if string(b) != `"2026-01-24T09:15:00"` {
		t.Errorf("DateTime marshaled as %s", b)
	}
}
