package repository

import (
	"context"
	"time"
)

// SessionRevocationRepository remembers logged-out session IDs until their tokens expire.
type SessionRevocationRepository interface {
	// Revoke marks the session ID as revoked for ttl. A non-positive ttl is a no-op.
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error

	// IsRevoked reports whether the session ID has been revoked and not yet expired.
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
