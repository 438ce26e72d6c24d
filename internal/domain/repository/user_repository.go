// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"languagebot/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their internal ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// UpsertBySubject creates the user for subject, or refreshes email and name
	// when one already exists. The stored record (with ID) is returned.
	UpsertBySubject(ctx context.Context, subject, email, name string) (*entity.User, error)
}
