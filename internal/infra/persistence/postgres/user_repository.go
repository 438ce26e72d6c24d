// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"languagebot/internal/domain/entity"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/domain/repository"
	"languagebot/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user by internal ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// UpsertBySubject inserts the user or refreshes email and name for an existing subject.
func (repo *userRepository) UpsertBySubject(ctx context.Context, subject, email, name string) (*entity.User, error) {
	userM := &model.UserModel{
		Subject: subject,
		Email:   email,
		Name:    name,
	}

	if err := upsertUser(repo.db.WithContext(ctx), userM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("missing required user information"))
		}

		return nil, domainerrors.NewStorageError(err, "failed to upsert user")
	}

	return toUserDomain(userM), nil
}

// upsertUser builds the single-statement insert-or-refresh for a subject.
// RETURNING * brings back the stored id and created_at when the row already existed.
func upsertUser(tx *gorm.DB, userM *model.UserModel) *gorm.DB {
	return tx.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "google_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "name", "updated_at"}),
		},
		clause.Returning{},
	).Omit("Credential").Create(userM)
}

// toUserDomain converts a persistence model to a domain entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Subject:   data.Subject,
		Email:     data.Email,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
