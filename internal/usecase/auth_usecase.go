// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"languagebot/internal/domain/entity"
)

// --- Output DTOs ---

// LoginOutput returns the signed session token after a successful login.
type LoginOutput struct {
	Token   string
	Session *entity.Session
	User    *entity.User
}

// StatusOutput reports whether the presented session evidence is valid.
// User is nil when Authenticated is false.
type StatusOutput struct {
	Authenticated bool
	User          *entity.User
}

// AuthUsecase defines the session lifecycle operations.
// Evidence is the raw session token taken from the cookie or bearer header.
type AuthUsecase interface {
	// Login verifies an identity provider token, upserts the user and opens a session.
	Login(ctx context.Context, credentialToken string) (*LoginOutput, error)

	// RequireAuthenticated returns the session bound to evidence or ErrUnauthenticated.
	RequireAuthenticated(ctx context.Context, evidence string) (*entity.Session, error)

	// Logout revokes the session. Missing or invalid evidence is not an error.
	Logout(ctx context.Context, evidence string) error

	// Status never fails for bad evidence; it reports Authenticated=false instead.
	Status(ctx context.Context, evidence string) (*StatusOutput, error)
}
