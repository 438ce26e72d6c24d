package middleware

import (
	"log/slog"
	"strings"

	"languagebot/config"
	deliverycontext "languagebot/internal/delivery/context"
	"languagebot/internal/domain/entity"
	"languagebot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthMiddleware guards routes that require a live session.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:     params.AuthUC,
		cookieName: params.Config.Session.CookieName,
	}
}

// Authenticate rejects the request unless it carries valid, unrevoked session evidence.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		session, err := m.authUC.RequireAuthenticated(ctx, SessionEvidence(c, m.cookieName))
		if err != nil {
			return err
		}

		c.Set(string(deliverycontext.KeySession), session)

		ctx = deliverycontext.WithSession(ctx, session)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.Int64("user_id", session.UserID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// SessionEvidence returns the session token from the cookie, or else from a bearer header.
func SessionEvidence(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return ""
}

// GetSession returns the session stored by Authenticate.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(deliverycontext.KeySession)).(*entity.Session)

	return session, ok && session != nil
}
