// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"log/slog"
	"strconv"
	"time"

	"languagebot/config"
	"languagebot/internal/domain/entity"
	"languagebot/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minSecretLength = 32

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
	now    func() time.Time
}

// JWTServiceParams holds dependencies for the token service, injected by Fx.
type JWTServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewJWTService is the constructor for jwtService.
// A missing secret is replaced by a random one, which invalidates all sessions on restart.
func NewJWTService(params JWTServiceParams) (service.TokenService, error) {
	cfg := params.Config.Session

	secret := []byte(cfg.Secret)
	switch {
	case len(secret) == 0:
		secret = make([]byte, minSecretLength)
		if _, err := rand.Read(secret); err != nil {
			return nil, errors.Wrap(err, "generate session secret")
		}
		params.Logger.Warn("SESSION SECRET NOT CONFIGURED: generated a random secret, sessions will not survive a restart. Set session.secret (SESSION_SECRET).")
	case len(secret) < minSecretLength:
		params.Logger.Warn("Session secret is shorter than recommended", slog.Int("min_length", minSecretLength))
	}

	return newJWTService(secret, cfg.TTL, time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: secret,
		ttl:    ttl,
		now:    now,
	}
}

// IssueSessionToken creates a signed session token bound to the user.
func (s *jwtService) IssueSessionToken(user *entity.User) (string, *entity.Session, error) {
	issuedAt := s.now().Truncate(time.Second)
	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(s.ttl),
	}

	claims := service.SessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        session.ID,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "sign session token")
	}

	return token, session, nil
}

// ParseSessionToken checks signature, algorithm and expiry of a session token.
func (s *jwtService) ParseSessionToken(tokenString string) (*entity.Session, error) {
	claims := &service.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, errors.Errorf("invalid session subject %q", claims.Subject)
	}
	if claims.ID == "" {
		return nil, errors.New("session token has no id")
	}

	session := &entity.Session{
		ID:        claims.ID,
		UserID:    userID,
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}

	return session, nil
}
