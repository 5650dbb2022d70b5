package logging

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C trace context: version-traceid-spanid-flags, all lowercase hex on the
// wire but parsed case-insensitively here.
var traceparentRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

var (
	projectIDOnce     sync.Once
	resolvedProjectID string
)

// loggerWithTrace decorates base with the Cloud Trace fields plus the chi
// request id. With nothing to add it returns base unchanged.
func loggerWithTrace(base *zap.Logger, header, projectID, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	fields := traceFields(header, projectID)
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

// traceFields builds the structured fields Cloud Logging needs to link a log
// entry to its trace. Without a project id the trace resource name cannot be
// formed, so an empty projectID yields no fields at all.
func traceFields(header, projectID string) []zap.Field {
	if projectID == "" {
		return nil
	}
	m := traceparentRe.FindStringSubmatch(header)
	if m == nil {
		return nil
	}
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", fmt.Sprintf("projects/%s/traces/%s", projectID, m[2])),
		zap.String("logging.googleapis.com/spanId", m[3]),
		zap.Bool("logging.googleapis.com/trace_sampled", m[4] == "01"),
	}
}

// traceResource returns the fully qualified trace name for the header, or ""
// when the header is absent, malformed, or no project id is known.
func traceResource(header, projectID string) string {
	if projectID == "" {
		return ""
	}
	m := traceparentRe.FindStringSubmatch(header)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("projects/%s/traces/%s", projectID, m[2])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// projectIDEnvVars is checked in order; the first one set wins.
var projectIDEnvVars = []string{
	"FIREBASE_PROJECT_ID",
	"GOOGLE_CLOUD_PROJECT",
	"GCP_PROJECT",
	"GCLOUD_PROJECT",
	"PROJECT_ID",
}

// resolveProjectID discovers the Google Cloud project once and caches the
// answer for the process lifetime.
func resolveProjectID() string {
	projectIDOnce.Do(func() {
		for _, key := range projectIDEnvVars {
			if v := os.Getenv(key); v != "" {
				resolvedProjectID = v
				return
			}
		}
	})
	return resolvedProjectID
}
