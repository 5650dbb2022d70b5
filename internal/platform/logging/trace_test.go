package logging

import (
	"testing"

	"go.uber.org/zap"
)

const sampleTraceparent = "00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01"

func TestTraceFieldsParsesTraceparent(t *testing.T) {
	fields := traceFields(sampleTraceparent, "prospot-dev")
	if len(fields) != 3 {
		t.Fatalf("expected 3 trace fields, got %d", len(fields))
	}
}

func TestTraceFieldsRequireProjectID(t *testing.T) {
	if fields := traceFields(sampleTraceparent, ""); fields != nil {
		t.Fatalf("expected no fields without project, got %v", fields)
	}
}

func TestTraceFieldsRejectMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "not-a-trace", "00-zz-d21f7bc17caa5aba-01"} {
		if fields := traceFields(header, "prospot-dev"); fields != nil {
			t.Errorf("expected no fields for %q, got %v", header, fields)
		}
	}
}

func TestTraceResource(t *testing.T) {
	got := traceResource(sampleTraceparent, "prospot-dev")
	want := "projects/prospot-dev/traces/ab42124a3c573678d4d8b21ba52df3bf"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLoggerWithTraceAttachesRequestID(t *testing.T) {
	logger := loggerWithTrace(zap.NewNop(), "", "", "req-1")
	if logger == nil {
		t.Fatal("expected logger")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "", "third"); got != "third" {
		t.Fatalf("got %q", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
