// Package model holds the GORM table mappings.
package model

import "time"

// UserModel mirrors the 'users' table. google_id is the identity provider subject.
type UserModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Subject   string    `gorm:"column:google_id;type:varchar(255);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(320);not null"`
	Name      string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Credential *CredentialModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
