// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "languagebot/internal/delivery/context"
	"languagebot/internal/domain/service"

	"github.com/google/uuid"
)

const auditPublishTimeout = 3 * time.Second

// publishAudit emits an audit event. Failures are logged and otherwise ignored,
// and the publish outlives a cancelled request context.
func publishAudit(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, userID int64) {
	if publisher == nil {
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditPublishTimeout)
	defer cancel()

	event := &service.AuditEvent{
		EventID:    uuid.New().String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishAuditEvent(pubCtx, event); err != nil {
		logger.Warn("Failed to publish audit event",
			slog.String("event_type", eventType),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
	}
}
