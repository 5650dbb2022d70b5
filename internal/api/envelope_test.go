package api

import (
	"encoding/json"
	"testing"
)

func TestSuccessEnvelopeShape(t *testing.T) {
	trace := "trace-abc"
	env := NewSuccessEnvelope(&trace, map[string]string{"id": "cap-1"})

	if env.Data == nil || (*env.Data)["id"] != "cap-1" {
		t.Fatalf("expected data payload, got %+v", env.Data)
	}
	if env.Error != nil {
		t.Errorf("success envelope must not carry an error, got %+v", env.Error)
	}
	if env.Meta.TraceID == nil || *env.Meta.TraceID != trace {
		t.Errorf("expected trace id %s, got %v", trace, env.Meta.TraceID)
	}
}

func TestErrorEnvelopeShape(t *testing.T) {
	env := NewErrorEnvelope[struct{}](nil, "NOT_FOUND", "listing not found", []FieldIssue{
		{Field: "id", Issue: "unknown listing"},
	})

	if env.Data != nil {
		t.Error("error envelope must have null data")
	}
	if env.Error == nil {
		t.Fatal("expected error body")
	}
	if env.Error.Code != "NOT_FOUND" || env.Error.Message != "listing not found" {
		t.Errorf("unexpected error body: %+v", env.Error)
	}
	if len(env.Error.Details) != 1 || env.Error.Details[0].Field != "id" {
		t.Errorf("unexpected details: %+v", env.Error.Details)
	}
}

func TestErrorEnvelopeClonesDetails(t *testing.T) {
	details := []FieldIssue{{Issue: "first"}}
	env := NewErrorEnvelope[struct{}](nil, "BAD_REQUEST", "bad", details)

	details[0].Issue = "mutated"
	if env.Error.Details[0].Issue != "first" {
		t.Error("envelope must not alias the caller's details slice")
	}
}

func TestEnvelopeJSONAlwaysHasDataAndError(t *testing.T) {
	env := NewErrorEnvelope[struct{}](nil, "CONFLICT", "duplicate review", nil)
	raw, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"data", "meta", "error"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected %q key in envelope JSON: %s", key, raw)
		}
	}
	if string(decoded["data"]) != "null" {
		t.Errorf("expected null data, got %s", decoded["data"])
	}
}
