package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"languagebot/internal/domain/entity"
	"languagebot/internal/domain/repository"

	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryCredentialRepository is an in-memory repository.CredentialRepository.
type memoryCredentialRepository struct {
	mu      sync.Mutex
	records map[int64]entity.Credential
}

func newMemoryCredentialRepository() *memoryCredentialRepository {
	return &memoryCredentialRepository{records: make(map[int64]entity.Credential)}
}

func (r *memoryCredentialRepository) Upsert(_ context.Context, credential *entity.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	existing, ok := r.records[credential.UserID]
	record := *credential
	record.CreatedAt = now
	if ok {
		record.CreatedAt = existing.CreatedAt
	}
	record.UpdatedAt = now
	r.records[credential.UserID] = record

	return nil
}

func (r *memoryCredentialRepository) FindByUserID(_ context.Context, userID int64) (*entity.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[userID]
	if !ok {
		return nil, errors.WithStack(repository.ErrCredentialNotFound)
	}

	return &record, nil
}

func (r *memoryCredentialRepository) ExistsByUserID(_ context.Context, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.records[userID]

	return ok, nil
}

func (r *memoryCredentialRepository) DeleteByUserID(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, userID)

	return nil
}

func (r *memoryCredentialRepository) get(userID int64) (entity.Credential, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[userID]

	return record, ok
}
