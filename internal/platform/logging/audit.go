package logging

import (
	"context"

	"go.uber.org/zap"
)

// LogAuditEvent records who changed what in the marketplace. Every mutation
// of a listing, ad, or user account goes through here so moderation can
// reconstruct the history from the log stream alone. actorID is "anonymous"
// when the mutation ran without an authenticated account, and result is
// either "success" or "failure".
func LogAuditEvent(
	ctx context.Context,
	action, actorID, resourceType, resourceID, result string,
	details map[string]any,
) {
	fields := []zap.Field{
		zap.String("audit.action", action),
		zap.String("audit.user_id", actorID),
		zap.String("audit.resource_type", resourceType),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
	}
	if details != nil {
		fields = append(fields, zap.Any("audit.details", details))
	}
	LoggerFromContext(ctx).Info("audit event", fields...)
}
