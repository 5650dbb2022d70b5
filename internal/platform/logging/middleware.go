package logging

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger installs a request-scoped logger in the context. When a
// traceparent header and a project id are both available the logger carries
// Cloud Trace fields so entries correlate in the log explorer; otherwise the
// chi request id stands in as the correlation key.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceHeader := r.Header.Get(traceparentHeader)
			projectID := resolveProjectID()
			requestID := chimiddleware.GetReqID(r.Context())

			traceID := firstNonEmpty(traceResource(traceHeader, projectID), requestID)
			scoped := loggerWithTrace(Logger(), traceHeader, projectID, requestID)

			ctx := contextWithTraceID(r.Context(), traceID)
			ctx = contextWithLogger(ctx, scoped)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccessLogger emits one summary line per request after the handler returns.
// It must sit below RequestLogger in the chain to pick up the scoped logger.
func AccessLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			LoggerFromContext(r.Context()).Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(started)),
			)
		})
	}
}
