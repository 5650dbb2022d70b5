package assist

import (
	"context"

	"go.uber.org/zap"

	applog "github.com/prospot/prospot-api/internal/platform/logging"
)

// WithFallback degrades to the local heuristic whenever the primary backend
// errors. Callers never see an assist failure.
type WithFallback struct {
	primary  Service
	fallback Service
}

// NewWithFallback wraps primary with the local heuristic. A nil primary means
// every call answers from the fallback.
func NewWithFallback(primary Service) *WithFallback {
	return &WithFallback{primary: primary, fallback: NewFallback()}
}

func (w *WithFallback) Classify(ctx context.Context, query string) (*Classification, error) {
	if w.primary != nil {
		result, err := w.primary.Classify(ctx, query)
		if err == nil {
			return result, nil
		}
		applog.LogWarn(ctx, "assist classify degraded to local heuristic", zap.Error(err))
	}
	return w.fallback.Classify(ctx, query)
}

func (w *WithFallback) Describe(ctx context.Context, name, category, title string) (*Copy, error) {
	if w.primary != nil {
		result, err := w.primary.Describe(ctx, name, category, title)
		if err == nil {
			return result, nil
		}
		applog.LogWarn(ctx, "assist describe degraded to local heuristic", zap.Error(err))
	}
	return w.fallback.Describe(ctx, name, category, title)
}

var _ Service = (*WithFallback)(nil)
