package service

// CredentialCipher encrypts opaque secret strings with the process-wide key.
// Every Encrypt call uses a fresh random IV that must be stored next to the ciphertext.
type CredentialCipher interface {
	Encrypt(plaintext string) (ciphertext string, iv string, err error)

	// Decrypt fails with ErrDecryptionFailed when the pair does not belong to the active key.
	Decrypt(ciphertext string, iv string) (string, error)
}
