// Package crypto implements the credential cipher used to encrypt upstream API keys at rest.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"

	"languagebot/config"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// IVSize is the per-encryption initialization vector length (128 bits).
	IVSize = 16

	hkdfInfo = "languagebot credential cipher"
)

// aesCipher implements service.CredentialCipher with AES-256-GCM.
type aesCipher struct {
	aead cipher.AEAD
}

// CipherParams holds dependencies for the credential cipher, injected by Fx.
type CipherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCredentialCipher builds the cipher from configuration. A missing key is
// replaced by a random one for the lifetime of the process.
func NewCredentialCipher(params CipherParams) (service.CredentialCipher, error) {
	var secret string
	if params.Config.Encryption != nil {
		secret = params.Config.Encryption.Key
	}

	key, generated, err := ResolveKey(secret)
	if err != nil {
		return nil, err
	}

	if generated {
		params.Logger.Warn("ENCRYPTION KEY NOT CONFIGURED: generated a random key for this process. " +
			"Stored API keys will be unreadable after a restart. Set encryption.key (ENCRYPTION_KEY) to a persistent value.")
	}

	return NewAESCipher(key)
}

// NewAESCipher creates a cipher for a 32-byte key.
func NewAESCipher(key []byte) (service.CredentialCipher, error) {
	if len(key) != KeySize {
		return nil, errors.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "creating cipher")
	}

	aead, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, errors.Wrap(err, "creating GCM")
	}

	return &aesCipher{aead: aead}, nil
}

// ResolveKey turns the configured secret into a 32-byte key.
// 64 hex characters are decoded as-is, any other non-empty secret is stretched
// with HKDF-SHA256, and an empty secret yields a random key with generated=true.
func ResolveKey(secret string) (key []byte, generated bool, err error) {
	if secret == "" {
		key = make([]byte, KeySize)
		if _, err := io.ReadFull(rand.Reader, key); err != nil {
			return nil, false, errors.Wrap(err, "generating encryption key")
		}

		return key, true, nil
	}

	if len(secret) == hex.EncodedLen(KeySize) {
		if decoded, decodeErr := hex.DecodeString(secret); decodeErr == nil {
			return decoded, false, nil
		}
	}

	key = make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, false, errors.Wrap(err, "deriving encryption key")
	}

	return key, false, nil
}

// Encrypt seals plaintext under a fresh random IV. Both values are hex encoded.
func (c *aesCipher) Encrypt(plaintext string) (string, string, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", "", errors.Wrap(err, "generating iv")
	}

	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)

	return hex.EncodeToString(sealed), hex.EncodeToString(iv), nil
}

// Decrypt reverses Encrypt. Any malformed or foreign pair yields ErrDecryptionFailed.
func (c *aesCipher) Decrypt(ciphertext, iv string) (string, error) {
	rawIV, err := hex.DecodeString(iv)
	if err != nil || len(rawIV) != IVSize {
		return "", errors.WithStack(domainerrors.ErrDecryptionFailed)
	}

	sealed, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrDecryptionFailed)
	}

	plaintext, err := c.aead.Open(nil, rawIV, sealed, nil)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrDecryptionFailed)
	}

	return string(plaintext), nil
}
