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

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// Upsert writes ciphertext and IV together in one statement, so concurrent
// readers never observe a pair taken from two different writes.
func (repo *credentialRepository) Upsert(ctx context.Context, credential *entity.Credential) error {
	credentialM := fromCredentialDomain(credential)

	if err := upsertCredential(repo.db.WithContext(ctx), credentialM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewStorageError(err, "credential references unknown user")
		}

		return domainerrors.NewStorageError(err, "failed to upsert credential")
	}

	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// FindByUserID retrieves the credential owned by a user.
func (repo *credentialRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, domainerrors.NewStorageError(err, "failed to find credential")
	}

	return toCredentialDomain(&credentialM), nil
}

// ExistsByUserID reports whether the user has a stored credential.
func (repo *credentialRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("user_id = ?", userID).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewStorageError(err, "failed to check credential")
	}

	return count > 0, nil
}

// DeleteByUserID removes the user's credential; zero affected rows is not an error.
func (repo *credentialRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CredentialModel{}).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to delete credential")
	}

	return nil
}

// upsertCredential overwrites ciphertext, IV and updated_at for an existing row.
// RETURNING * brings back the stored created_at instead of the write time.
func upsertCredential(tx *gorm.DB, credentialM *model.CredentialModel) *gorm.DB {
	return tx.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"encrypted_key", "iv", "updated_at"}),
		},
		clause.Returning{},
	).Create(credentialM)
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		UserID:     data.UserID,
		Ciphertext: data.EncryptedKey,
		IV:         data.IV,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		UserID:       data.UserID,
		EncryptedKey: data.Ciphertext,
		IV:           data.IV,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
