// Command keygen prints fresh secrets for ENCRYPTION_KEY and SESSION_SECRET.
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"languagebot/internal/infra/crypto"
)

func main() {
	encryptionKey, err := newSecret()
	if err != nil {
		slog.Error("Failed to generate encryption key", slog.Any("error", err))
		os.Exit(1)
	}

	sessionSecret, err := newSecret()
	if err != nil {
		slog.Error("Failed to generate session secret", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("ENCRYPTION_KEY=%s\n", encryptionKey)
	fmt.Printf("SESSION_SECRET=%s\n", sessionSecret)
}

func newSecret() (string, error) {
	key, _, err := crypto.ResolveKey("")
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(key), nil
}
