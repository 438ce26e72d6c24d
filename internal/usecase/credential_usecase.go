package usecase

import "context"

// CredentialVault stores one upstream API key per user, encrypted at rest.
type CredentialVault interface {
	// Save encrypts apiKey and stores it, replacing any previous key.
	Save(ctx context.Context, userID int64, apiKey string) error

	// Get returns the decrypted key. found is false when the user has none.
	Get(ctx context.Context, userID int64) (apiKey string, found bool, err error)

	// Delete removes the user's key. Deleting a missing key succeeds.
	Delete(ctx context.Context, userID int64) error

	// HasKey reports whether the user stored a key. The fallback key is not considered.
	HasKey(ctx context.Context, userID int64) (bool, error)
}
