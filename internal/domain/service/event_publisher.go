package service

import (
	"context"
	"time"
)

// Audit event types.
const (
	AuditEventUserLogin         = "user.login"
	AuditEventCredentialSaved   = "credential.saved"
	AuditEventCredentialDeleted = "credential.deleted"
)

// AuditEvent records a security-relevant action. It never carries key material.
type AuditEvent struct {
	EventID    string    `json:"event_id"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	UserID     int64     `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event. Callers treat failures as non-fatal.
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
