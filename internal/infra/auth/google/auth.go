// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"languagebot/config"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

var trustedIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// TokenValidator is the subset of *idtoken.Validator used by the verifier.
type TokenValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// IdentityVerifier implements service.IdentityVerifier for Google ID tokens.
// Signature, audience and expiry checks are delegated to the idtoken package,
// which caches Google's public certificates.
type IdentityVerifier struct {
	validator TokenValidator
	clientID  string
	timeout   time.Duration
	logger    *slog.Logger
}

// VerifierParams holds dependencies for the verifier, injected by Fx.
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityVerifier creates a verifier whose certificate fetches are bounded
// by the configured verify timeout.
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	cfg := params.Config.GoogleOAuth

	httpClient := &http.Client{Timeout: cfg.VerifyTimeout}
	validator, err := idtoken.NewValidator(params.Ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, errors.Wrap(err, "create id token validator")
	}

	if cfg.ClientID == "" {
		params.Logger.Warn("googleOAuth.clientId is not configured, every login will be rejected")
	}

	return NewIdentityVerifierWithValidator(validator, cfg.ClientID, cfg.VerifyTimeout, params.Logger), nil
}

// NewIdentityVerifierWithValidator wires a custom validator.
func NewIdentityVerifierWithValidator(validator TokenValidator, clientID string, timeout time.Duration, logger *slog.Logger) *IdentityVerifier {
	return &IdentityVerifier{
		validator: validator,
		clientID:  clientID,
		timeout:   timeout,
		logger:    logger,
	}
}

// Verify implements service.IdentityVerifier.
func (v *IdentityVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails("empty token"))
	}

	// idtoken skips the audience check for an empty audience.
	if v.clientID == "" {
		v.logger.Error("Rejecting ID token: client ID not configured")

		return nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails("client ID not configured"))
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	payload, err := v.validator.Validate(ctx, token, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails(err.Error()))
	}

	if _, ok := trustedIssuers[payload.Issuer]; !ok {
		v.logger.Warn("Google ID token has untrusted issuer", slog.String("issuer", payload.Issuer))

		return nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails("untrusted issuer"))
	}

	if payload.Subject == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken.WithDetails("missing subject"))
	}

	identity := &service.Identity{
		Subject: payload.Subject,
		Email:   stringClaim(payload.Claims, "email"),
		Name:    stringClaim(payload.Claims, "name"),
	}

	v.logger.Debug("Google ID token verified", slog.String("subject", identity.Subject))

	return identity, nil
}

func stringClaim(claims map[string]any, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}

	return ""
}
