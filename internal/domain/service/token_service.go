package service

import (
	"languagebot/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the custom claims for session tokens.
type SessionClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueSessionToken signs a new session token for the user.
	IssueSessionToken(user *entity.User) (token string, session *entity.Session, err error)

	// ParseSessionToken verifies signature and expiry and returns the bound session.
	ParseSessionToken(token string) (*entity.Session, error)

}
