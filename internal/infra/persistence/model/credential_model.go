package model

import "time"

// CredentialModel mirrors the 'api_keys' table. One row per user; the
// ciphertext and its IV always live in the same row.
type CredentialModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UserID       int64     `gorm:"uniqueIndex;not null"`
	EncryptedKey string    `gorm:"type:text;not null"`
	IV           string    `gorm:"column:iv;type:varchar(64);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "api_keys"
}

// All returns every model managed by AutoMigrate, parents first.
func All() []any {
	return []any{
		&UserModel{},
		&CredentialModel{},
	}
}
