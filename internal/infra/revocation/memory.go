// Package revocation stores the IDs of logged-out sessions until their tokens expire.
package revocation

import (
	"context"
	"sync"
	"time"

	"languagebot/internal/domain/repository"
)

const defaultSweepInterval = time.Minute

// MemoryStore keeps revoked session IDs in process memory.
// Revocations are lost on restart, so a restart re-admits tokens that were logged out.
type MemoryStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

var _ repository.SessionRevocationRepository = (*MemoryStore)(nil)

// NewMemoryStore creates a store and starts a background sweep of expired entries.
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}

	s := &MemoryStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go s.sweepLoop(sweepInterval)

	return s
}

// Revoke implements repository.SessionRevocationRepository.
func (s *MemoryStore) Revoke(_ context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	expiresAt := s.now().Add(ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.revoked[sessionID]; !ok || current.Before(expiresAt) {
		s.revoked[sessionID] = expiresAt
	}

	return nil
}

// IsRevoked implements repository.SessionRevocationRepository.
func (s *MemoryStore) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	expiresAt, ok := s.revoked[sessionID]
	s.mu.RUnlock()

	return ok && s.now().Before(expiresAt), nil
}

// Len returns the number of tracked entries, expired ones included until the next sweep.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.revoked)
}

// Sweep drops entries whose token lifetime has passed.
func (s *MemoryStore) Sweep() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, expiresAt := range s.revoked {
		if !now.Before(expiresAt) {
			delete(s.revoked, id)
		}
	}
}

// Close stops the background sweep.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })

	return nil
}

func (s *MemoryStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stop:
			return
		}
	}
}
