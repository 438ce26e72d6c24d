package entity

import "time"

// Credential is a user's upstream API key, encrypted at rest.
// A user owns zero or one credential; Ciphertext and IV are always written together.
type Credential struct {
	UserID     int64     // Owning user. Unique.
	Ciphertext string    // Hex-encoded ciphertext.
	IV         string    // Hex-encoded initialization vector used for this ciphertext only.
	CreatedAt  time.Time // Timestamp of the first save.
	UpdatedAt  time.Time // Timestamp of the last overwrite.
}
