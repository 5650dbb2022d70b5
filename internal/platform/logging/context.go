package logging

import (
	"context"

	"go.uber.org/zap"
)

type (
	loggerKey  struct{}
	traceIDKey struct{}
)

// LoggerFromContext returns the logger RequestLogger stored for this request.
// Outside a request, or on a nil context, it falls back to the process logger
// so callers never need a nil check.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	return Logger()
}

// TraceIDFromContext returns the request's correlation id, or nil when the
// request carried neither a trace header nor a request id. Response envelopes
// surface it as meta.traceId.
func TraceIDFromContext(ctx context.Context) *string {
	if ctx == nil {
		return nil
	}
	v, ok := ctx.Value(traceIDKey{}).(*string)
	if !ok || v == nil || *v == "" {
		return nil
	}
	return v
}

// LogInfo logs at info level with the request-scoped logger.
func LogInfo(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Info(msg, fields...)
}

// LogWarn logs at warning level with the request-scoped logger.
func LogWarn(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Warn(msg, fields...)
}

// LogError logs at error level, attaching err as a structured field when non-nil.
func LogError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	LoggerFromContext(ctx).Error(msg, withErr(err, fields)...)
}

// LogFatal logs the error and exits the process. Startup use only.
func LogFatal(ctx context.Context, msg string, err error, fields ...zap.Field) {
	LoggerFromContext(ctx).Fatal(msg, withErr(err, fields)...)
}

func withErr(err error, fields []zap.Field) []zap.Field {
	if err == nil {
		return fields
	}
	return append(fields, zap.Error(err))
}

func contextWithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

func contextWithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		return ctx
	}
	if ctx == nil {
		ctx = context.Background()
	}
	id := traceID
	return context.WithValue(ctx, traceIDKey{}, &id)
}
