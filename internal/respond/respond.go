// Package respond funnels every response, success or failure, through the
// shared envelope. It overrides huma's error constructors so validation
// failures and handler errors render identically to the router-level 404,
// 405, and panic fallbacks.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/prospot/prospot-api/internal/api"
	applog "github.com/prospot/prospot-api/internal/platform/logging"
)

var installOnce sync.Once

// Install replaces huma.NewError and huma.NewErrorWithContext with
// envelope-producing versions. Call once before registering operations.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return newStatusError(context.Background(), status, statusCodeName(status), orStatusText(status, msg), collectIssues(errs))
		}

		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			goCtx := context.Background()
			if hctx != nil {
				goCtx = hctx.Context()
			}
			return newStatusError(goCtx, status, statusCodeName(status), orStatusText(status, msg), collectIssues(errs), errs...)
		}
	})
}

// Success wraps data in a success envelope carrying the request's trace id.
func Success[T any](ctx context.Context, data T) api.Envelope[T] {
	return api.NewSuccessEnvelope[T](applog.TraceIDFromContext(ctx), data)
}

// Error builds an enveloped status error and logs it at a severity matching
// the status. Empty code and msg fall back to values derived from the status.
func Error(ctx context.Context, status int, code, msg string, issues []api.FieldIssue, errs ...error) huma.StatusError {
	if code == "" {
		code = statusCodeName(status)
	}
	msg = orStatusText(status, msg)
	return newStatusError(ctx, status, code, msg, issues, errs...)
}

// Write serializes an envelope straight to the ResponseWriter, bypassing huma.
// The router fallbacks use it for requests that never reach an operation.
func Write[T any](w http.ResponseWriter, status int, env api.Envelope[T]) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(env)
}

// WriteError logs and renders an error envelope in one step.
func WriteError(w http.ResponseWriter, ctx context.Context, status int, code, msg string, issues []api.FieldIssue, errs ...error) error {
	se := Error(ctx, status, code, msg, issues, errs...)
	env, ok := se.(*statusEnvelopeError)
	if !ok {
		return se
	}
	return Write(w, se.GetStatus(), env.Envelope)
}

// writeFallback renders a router-level error response, deriving the code
// from the status.
func writeFallback(w http.ResponseWriter, r *http.Request, status int, msg string, errs ...error) {
	if err := WriteError(w, r.Context(), status, statusCodeName(status), msg, nil, errs...); err != nil {
		applog.LogError(r.Context(), "failed to render error response", err)
	}
}

// NotFoundHandler is the chi fallback for unmatched paths.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeFallback(w, r, http.StatusNotFound, "resource not found")
	}
}

// MethodNotAllowedHandler is the chi fallback for matched paths with the
// wrong verb. It fills the Allow header by probing the route table.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		writeFallback(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Recoverer turns a handler panic into an enveloped 500. The panic value and
// stack go to the log, never to the client.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				err = fmt.Errorf("%w\n%s", err, debug.Stack())
				writeFallback(w, r, http.StatusInternalServerError, "internal server error", err)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// allowedMethods re-matches the request path against every verb to find out
// which ones the router would accept.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		routePath = r.URL.RawPath
		if routePath == "" {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	candidates := []string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}
	var allowed []string
	for _, method := range candidates {
		if rctx.Routes.Match(chi.NewRouteContext(), method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// statusEnvelopeError satisfies huma.StatusError while carrying the full
// envelope, so huma serializes the envelope itself as the response body.
type statusEnvelopeError struct {
	api.Envelope[struct{}]
	status int
}

func (e *statusEnvelopeError) Error() string {
	if e.Envelope.Error != nil && e.Envelope.Error.Message != "" {
		return e.Envelope.Error.Message
	}
	return http.StatusText(e.status)
}

func (e *statusEnvelopeError) GetStatus() int {
	return e.status
}

func newStatusError(ctx context.Context, status int, code, msg string, issues []api.FieldIssue, errs ...error) huma.StatusError {
	logFields := []zap.Field{
		zap.Int("status", status),
		zap.String("code", code),
		zap.String("message", msg),
	}
	if len(issues) > 0 {
		logFields = append(logFields, zap.Any("details", issues))
	}
	logByStatus(ctx, status, msg, coalesce(errs), logFields...)
	env := api.NewErrorEnvelope[struct{}](applog.TraceIDFromContext(ctx), code, msg, issues)
	return &statusEnvelopeError{Envelope: env, status: status}
}

// collectIssues flattens the error list into envelope details, preferring
// huma's field-aware detail when an error carries one.
func collectIssues(errs []error) []api.FieldIssue {
	var issues []api.FieldIssue
	for _, err := range errs {
		if err == nil {
			continue
		}
		issue := api.FieldIssue{Issue: err.Error()}
		if detailer, ok := err.(huma.ErrorDetailer); ok {
			if detail := detailer.ErrorDetail(); detail != nil {
				issue.Issue = detail.Message
				issue.Field = detail.Location
			}
		}
		issues = append(issues, issue)
	}
	return issues
}

func coalesce(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

// statusCodeName derives the stable error code from the HTTP status text,
// e.g. 404 becomes NOT_FOUND. Unknown statuses get HTTP_<n>.
func statusCodeName(status int) string {
	name := strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	name = strings.ReplaceAll(name, "-", "_")
	if strings.TrimSpace(name) == "" {
		return fmt.Sprintf("HTTP_%d", status)
	}
	return name
}

func orStatusText(status int, msg string) string {
	if strings.TrimSpace(msg) != "" {
		return msg
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

// logByStatus maps 5xx to error, 4xx to warning, everything else to info.
func logByStatus(ctx context.Context, status int, msg string, err error, fields ...zap.Field) {
	if ctx == nil {
		ctx = context.Background()
	}
	if msg == "" {
		msg = "request failed"
	}
	switch {
	case status >= 500:
		applog.LogError(ctx, msg, err, fields...)
	case status >= 400:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		applog.LogWarn(ctx, msg, fields...)
	default:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		applog.LogInfo(ctx, msg, fields...)
	}
}
