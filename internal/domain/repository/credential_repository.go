package repository

import (
	"context"

	"languagebot/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCredentialNotFound is returned when a user has no stored credential.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository persists encrypted credentials, one per user.
type CredentialRepository interface {
	// Upsert inserts the credential or overwrites ciphertext, IV and updated
	// timestamp of the existing one in a single statement.
	Upsert(ctx context.Context, credential *entity.Credential) error

	// FindByUserID returns ErrCredentialNotFound when the user has none.
	FindByUserID(ctx context.Context, userID int64) (*entity.Credential, error)

	// ExistsByUserID reports whether the user has a stored credential.
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)

	// DeleteByUserID removes the credential. Deleting a missing credential is not an error.
	DeleteByUserID(ctx context.Context, userID int64) error
}
