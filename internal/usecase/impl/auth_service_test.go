package impl

import (
	"context"
	"testing"
	"time"

	"languagebot/internal/domain/entity"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/domain/repository"
	"languagebot/internal/domain/service"
	"languagebot/internal/infra/revocation"
	mockRepo "languagebot/internal/mocks/repository"
	mockService "languagebot/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	users       *mockRepo.MockUserRepository
	revocations *mockRepo.MockSessionRevocationRepository
	verifier    *mockService.MockIdentityVerifier
	tokens      *mockService.MockTokenService
	publisher   *mockService.MockEventPublisher
	service     *authService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		users:       mockRepo.NewMockUserRepository(t),
		revocations: mockRepo.NewMockSessionRevocationRepository(t),
		verifier:    mockService.NewMockIdentityVerifier(t),
		tokens:      mockService.NewMockTokenService(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}
	f.service = NewAuthService(AuthServiceParams{
		UserRepo:       f.users,
		Revocations:    f.revocations,
		Verifier:       f.verifier,
		TokenService:   f.tokens,
		EventPublisher: f.publisher,
		Logger:         newDiscardLogger(),
	}).(*authService)

	return f
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: 1, Subject: "sub-42", Email: "a@x.com", Name: "A"}
	session := &entity.Session{ID: "jti-1", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}

	f.verifier.EXPECT().Verify(ctx, "id-token").
		Return(&service.Identity{Subject: "sub-42", Email: "a@x.com", Name: "A"}, nil)
	f.users.EXPECT().UpsertBySubject(ctx, "sub-42", "a@x.com", "A").Return(user, nil)
	f.tokens.EXPECT().IssueSessionToken(user).Return("signed", session, nil)
	f.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.MatchedBy(func(e *service.AuditEvent) bool {
		return e.Type == service.AuditEventUserLogin && e.UserID == 1
	})).Return(nil)

	out, err := f.service.Login(ctx, "id-token")

	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, user, out.User)
	assert.Equal(t, session, out.Session)
}

func TestAuthService_Login_MissingToken(t *testing.T) {
	f := newAuthFixture(t)

	out, err := f.service.Login(context.Background(), "  ")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Login_InvalidTokenCreatesNothing(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.verifier.EXPECT().Verify(ctx, "forged").Return(nil, errors.WithStack(domainerrors.ErrInvalidToken))

	out, err := f.service.Login(ctx, "forged")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	f.users.AssertNotCalled(t, "UpsertBySubject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_PublishFailureIsNotFatal(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: 2, Subject: "s"}

	f.verifier.EXPECT().Verify(ctx, "tok").Return(&service.Identity{Subject: "s"}, nil)
	f.users.EXPECT().UpsertBySubject(ctx, "s", "", "").Return(user, nil)
	f.tokens.EXPECT().IssueSessionToken(user).Return("signed", &entity.Session{ID: "j"}, nil)
	f.publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(errors.New("unavailable"))

	out, err := f.service.Login(ctx, "tok")

	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.verifier.EXPECT().Verify(ctx, "tok").Return(&service.Identity{Subject: "s"}, nil)
	f.users.EXPECT().UpsertBySubject(ctx, "s", "", "").
		Return(nil, domainerrors.NewStorageError(errors.New("db down"), "failed to upsert user"))

	_, err := f.service.Login(ctx, "tok")

	assert.ErrorIs(t, err, domainerrors.ErrStorage)
}

func TestAuthService_RequireAuthenticated(t *testing.T) {
	ctx := context.Background()
	session := &entity.Session{ID: "jti", UserID: 9}

	tests := []struct {
		name     string
		evidence string
		setup    func(f *authFixture)
		wantErr  error
	}{
		{
			name:     "no evidence",
			evidence: "",
			setup:    func(*authFixture) {},
			wantErr:  domainerrors.ErrUnauthenticated,
		},
		{
			name:     "bad signature",
			evidence: "garbage",
			setup: func(f *authFixture) {
				f.tokens.EXPECT().ParseSessionToken("garbage").Return(nil, errors.New("signature is invalid"))
			},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:     "revoked",
			evidence: "tok",
			setup: func(f *authFixture) {
				f.tokens.EXPECT().ParseSessionToken("tok").Return(session, nil)
				f.revocations.EXPECT().IsRevoked(ctx, "jti").Return(true, nil)
			},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:     "revocation store down fails closed",
			evidence: "tok",
			setup: func(f *authFixture) {
				f.tokens.EXPECT().ParseSessionToken("tok").Return(session, nil)
				f.revocations.EXPECT().IsRevoked(ctx, "jti").Return(false, errors.New("redis timeout"))
			},
			wantErr: domainerrors.ErrInternalError,
		},
		{
			name:     "valid",
			evidence: "tok",
			setup: func(f *authFixture) {
				f.tokens.EXPECT().ParseSessionToken("tok").Return(session, nil)
				f.revocations.EXPECT().IsRevoked(ctx, "jti").Return(false, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			tt.setup(f)

			got, err := f.service.RequireAuthenticated(ctx, tt.evidence)

			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, session, got)
		})
	}
}

func TestAuthService_Logout_RevokesForRemainingLifetime(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	f.service.now = func() time.Time { return now }
	session := &entity.Session{ID: "jti", UserID: 9, ExpiresAt: now.Add(90 * time.Minute)}

	f.tokens.EXPECT().ParseSessionToken("tok").Return(session, nil)
	f.revocations.EXPECT().Revoke(ctx, "jti", 90*time.Minute).Return(nil)

	require.NoError(t, f.service.Logout(ctx, "tok"))
}

func TestAuthService_Logout_IsIdempotentForBadEvidence(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.tokens.EXPECT().ParseSessionToken("expired").Return(nil, errors.New("token is expired"))

	assert.NoError(t, f.service.Logout(ctx, ""))
	assert.NoError(t, f.service.Logout(ctx, "expired"))
	f.revocations.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_LogoutThenRequireAuthenticated(t *testing.T) {
	f := newAuthFixture(t)
	store := revocation.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	f.service.revocations = store
	ctx := context.Background()
	session := &entity.Session{ID: "jti", UserID: 9, ExpiresAt: time.Now().Add(time.Hour)}

	f.tokens.EXPECT().ParseSessionToken("tok").Return(session, nil)

	_, err := f.service.RequireAuthenticated(ctx, "tok")
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(ctx, "tok"))
	require.NoError(t, f.service.Logout(ctx, "tok"))

	_, err = f.service.RequireAuthenticated(ctx, "tok")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_Status(t *testing.T) {
	ctx := context.Background()
	session := &entity.Session{ID: "jti", UserID: 9}
	user := &entity.User{ID: 9, Email: "a@x.com"}

	t.Run("authenticated", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().ParseSessionToken("tok").Return(session, nil)
		f.revocations.EXPECT().IsRevoked(ctx, "jti").Return(false, nil)
		f.users.EXPECT().FindByID(ctx, int64(9)).Return(user, nil)

		out, err := f.service.Status(ctx, "tok")

		require.NoError(t, err)
		assert.True(t, out.Authenticated)
		assert.Equal(t, user, out.User)
	})

	t.Run("no evidence", func(t *testing.T) {
		f := newAuthFixture(t)

		out, err := f.service.Status(ctx, "")

		require.NoError(t, err)
		assert.False(t, out.Authenticated)
		assert.Nil(t, out.User)
	})

	t.Run("user gone", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().ParseSessionToken("tok").Return(session, nil)
		f.revocations.EXPECT().IsRevoked(ctx, "jti").Return(false, nil)
		f.users.EXPECT().FindByID(ctx, int64(9)).Return(nil, errors.WithStack(repository.ErrUserNotFound))

		out, err := f.service.Status(ctx, "tok")

		require.NoError(t, err)
		assert.False(t, out.Authenticated)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().ParseSessionToken("tok").Return(session, nil)
		f.revocations.EXPECT().IsRevoked(ctx, "jti").Return(false, errors.New("down"))

		out, err := f.service.Status(ctx, "tok")

		require.NoError(t, err)
		assert.False(t, out.Authenticated)
		assert.Nil(t, out.User)
	})

	t.Run("user lookup failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().ParseSessionToken("tok").Return(session, nil)
		f.revocations.EXPECT().IsRevoked(ctx, "jti").Return(false, nil)
		f.users.EXPECT().FindByID(ctx, int64(9)).Return(nil, errors.New("connection reset"))

		out, err := f.service.Status(ctx, "tok")

		require.NoError(t, err)
		assert.False(t, out.Authenticated)
	})
}
