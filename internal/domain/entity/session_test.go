package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_TTL(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *Session
		want    time.Duration
	}{
		{name: "nil session", session: nil, want: 0},
		{name: "active session", session: &Session{ExpiresAt: now.Add(90 * time.Minute)}, want: 90 * time.Minute},
		{name: "expired session", session: &Session{ExpiresAt: now.Add(-time.Second)}, want: 0},
		{name: "expires now", session: &Session{ExpiresAt: now}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.TTL(now))
		})
	}
}
