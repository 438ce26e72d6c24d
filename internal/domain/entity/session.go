package entity

import "time"

// Session is the authenticated state carried by a signed session token.
type Session struct {
	ID        string // Unique token identifier (jti), used for revocation.
	UserID    int64
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TTL returns the remaining lifetime of the session relative to now.
func (s *Session) TTL(now time.Time) time.Duration {
	if s == nil || !now.Before(s.ExpiresAt) {
		return 0
	}

	return s.ExpiresAt.Sub(now)
}
