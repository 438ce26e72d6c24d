package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "languagebot/internal/delivery/context"
	"languagebot/internal/domain/entity"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/domain/repository"
	"languagebot/internal/domain/service"
	"languagebot/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo       repository.UserRepository
	revocations    repository.SessionRevocationRepository
	verifier       service.IdentityVerifier
	tokenService   service.TokenService
	eventPublisher service.EventPublisher
	now            func() time.Time
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	Revocations    repository.SessionRevocationRepository
	Verifier       service.IdentityVerifier
	TokenService   service.TokenService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:       params.UserRepo,
		revocations:    params.Revocations,
		verifier:       params.Verifier,
		tokenService:   params.TokenService,
		eventPublisher: params.EventPublisher,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// Login verifies the identity token, refreshes the user record and signs a new session.
func (srv *authService) Login(ctx context.Context, credentialToken string) (*usecase.LoginOutput, error) {
	credentialToken = strings.TrimSpace(credentialToken)
	if credentialToken == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("missing token"))
	}

	identity, err := srv.verifier.Verify(ctx, credentialToken)
	if err != nil {
		srv.log(ctx).Info("Identity token rejected", slog.Any("error", err))

		return nil, err
	}

	user, err := srv.userRepo.UpsertBySubject(ctx, identity.Subject, identity.Email, identity.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert user")
	}

	token, session, err := srv.tokenService.IssueSessionToken(user)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("User logged in",
		slog.Int64("user_id", user.ID),
		slog.String("session_id", session.ID),
	)
	publishAudit(ctx, srv.eventPublisher, srv.log(ctx), service.AuditEventUserLogin, user.ID)

	return &usecase.LoginOutput{
		Token:   token,
		Session: session,
		User:    user,
	}, nil
}

// RequireAuthenticated resolves evidence to a live session.
// A revocation store failure is reported as an internal error, never as success.
func (srv *authService) RequireAuthenticated(ctx context.Context, evidence string) (*entity.Session, error) {
	if evidence == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	session, err := srv.tokenService.ParseSessionToken(evidence)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	revoked, err := srv.revocations.IsRevoked(ctx, session.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to check session revocation",
			slog.String("session_id", session.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}
	if revoked {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return session, nil
}

// Logout revokes the session until its natural expiry.
func (srv *authService) Logout(ctx context.Context, evidence string) error {
	if evidence == "" {
		return nil
	}

	session, err := srv.tokenService.ParseSessionToken(evidence)
	if err != nil {
		return nil
	}

	if err := srv.revocations.Revoke(ctx, session.ID, session.TTL(srv.now())); err != nil {
		srv.log(ctx).Error("Failed to revoke session",
			slog.String("session_id", session.ID),
			slog.Any("error", err),
		)

		return domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("User logged out",
		slog.Int64("user_id", session.UserID),
		slog.String("session_id", session.ID),
	)

	return nil
}

// Status reports the user behind evidence, if any. It never fails: a session
// that cannot be checked is reported as signed out, while protected routes
// still reject it through RequireAuthenticated.
func (srv *authService) Status(ctx context.Context, evidence string) (*usecase.StatusOutput, error) {
	session, err := srv.RequireAuthenticated(ctx, evidence)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrUnauthenticated) {
			srv.log(ctx).Warn("Session check failed, reporting signed out", slog.Any("error", err))
		}

		return &usecase.StatusOutput{Authenticated: false}, nil
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Failed to load session user",
				slog.Int64("user_id", session.UserID),
				slog.Any("error", err),
			)
		}

		return &usecase.StatusOutput{Authenticated: false}, nil
	}

	return &usecase.StatusOutput{Authenticated: true, User: user}, nil
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
