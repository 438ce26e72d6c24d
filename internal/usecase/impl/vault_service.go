package impl

import (
	"context"
	"log/slog"

	deliverycontext "languagebot/internal/delivery/context"
	"languagebot/internal/domain/entity"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/domain/repository"
	"languagebot/internal/domain/service"
	"languagebot/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vaultService implements the CredentialVault interface.
type vaultService struct {
	credentialRepo repository.CredentialRepository
	cipher         service.CredentialCipher
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// VaultServiceParams holds dependencies for VaultService, injected by Fx.
type VaultServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Cipher         service.CredentialCipher
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewVaultService is the constructor for vaultService.
func NewVaultService(params VaultServiceParams) usecase.CredentialVault {
	return &vaultService{
		credentialRepo: params.CredentialRepo,
		cipher:         params.Cipher,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// Save encrypts apiKey under a fresh IV and overwrites the user's previous key.
func (srv *vaultService) Save(ctx context.Context, userID int64, apiKey string) error {
	if apiKey == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("apiKey is required"))
	}

	ciphertext, iv, err := srv.cipher.Encrypt(apiKey)
	if err != nil {
		return errors.WithStack(domainerrors.NewStorageError(err, "failed to encrypt credential"))
	}

	credential := &entity.Credential{
		UserID:     userID,
		Ciphertext: ciphertext,
		IV:         iv,
	}
	if err := srv.credentialRepo.Upsert(ctx, credential); err != nil {
		srv.log(ctx).Error("Failed to store credential",
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)

		return asStorageError(err, "failed to store credential")
	}

	srv.log(ctx).Info("Credential saved", slog.Int64("user_id", userID))
	publishAudit(ctx, srv.eventPublisher, srv.log(ctx), service.AuditEventCredentialSaved, userID)

	return nil
}

// Get decrypts the stored key. A key that no longer decrypts under the active
// process key is a storage error, not an absent key.
func (srv *vaultService) Get(ctx context.Context, userID int64) (string, bool, error) {
	credential, err := srv.credentialRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return "", false, nil
		}

		return "", false, asStorageError(err, "failed to load credential")
	}

	apiKey, err := srv.cipher.Decrypt(credential.Ciphertext, credential.IV)
	if err != nil {
		srv.log(ctx).Error("Stored credential could not be decrypted",
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)

		return "", false, errors.WithStack(domainerrors.NewStorageError(err, "failed to decrypt credential"))
	}

	return apiKey, true, nil
}

// Delete removes the user's key.
func (srv *vaultService) Delete(ctx context.Context, userID int64) error {
	if err := srv.credentialRepo.DeleteByUserID(ctx, userID); err != nil {
		return asStorageError(err, "failed to delete credential")
	}

	srv.log(ctx).Info("Credential deleted", slog.Int64("user_id", userID))
	publishAudit(ctx, srv.eventPublisher, srv.log(ctx), service.AuditEventCredentialDeleted, userID)

	return nil
}

// HasKey reports whether the user has a stored key, without decrypting it.
func (srv *vaultService) HasKey(ctx context.Context, userID int64) (bool, error) {
	exists, err := srv.credentialRepo.ExistsByUserID(ctx, userID)
	if err != nil {
		return false, asStorageError(err, "failed to check credential")
	}

	return exists, nil
}

func (srv *vaultService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// asStorageError keeps repository storage errors as they are and classifies anything else.
func asStorageError(err error, details string) error {
	if errors.Is(err, domainerrors.ErrStorage) {
		return err
	}

	return errors.WithStack(domainerrors.NewStorageError(err, details))
}
