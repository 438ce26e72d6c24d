package service

import "context"

// Identity is the verified subset of an identity provider token.
type Identity struct {
	Subject string // Provider-specific user ID (Google's 'sub' claim)
	Email   string
	Name    string
}

// IdentityVerifier validates externally issued ID tokens.
// This performs network I/O (or uses cached public keys) and may be slow.
type IdentityVerifier interface {
	// Verify returns ErrInvalidToken for malformed, untrusted, expired or
	// wrong-audience tokens, and when the provider cannot be reached in time.
	Verify(ctx context.Context, token string) (*Identity, error)
}
