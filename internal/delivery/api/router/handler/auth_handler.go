// Package handler implements the HTTP handlers of the public API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"languagebot/config"
	"languagebot/internal/delivery/api/middleware"
	"languagebot/internal/delivery/api/response"
	"languagebot/internal/domain/entity"
	"languagebot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves the session lifecycle endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cookie cookieSettings
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cookie: newCookieSettings(params.Config),
		logger: params.Logger,
	}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	CredentialToken string `json:"credentialToken" validate:"required"`
}

// Login exchanges a Google ID token for a session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "missing token")
	}

	out, err := h.authUC.Login(c.Request().Context(), req.CredentialToken)
	if err != nil {
		return err
	}

	c.SetCookie(h.cookie.issue(out.Token, out.Session.TTL(time.Now())))

	return response.JSON(c, http.StatusOK, response.SuccessResponse{
		Success: true,
		User:    toUserInfo(out.User),
	})
}

// Logout revokes the presented session and clears the cookie. It always succeeds
// for missing or invalid evidence.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookie.clear())

	if err := h.authUC.Logout(c.Request().Context(), middleware.SessionEvidence(c, h.cookie.name)); err != nil {
		return err
	}

	return response.Success(c)
}

// Status reports whether the caller is signed in.
func (h *AuthHandler) Status(c echo.Context) error {
	out, err := h.authUC.Status(c.Request().Context(), middleware.SessionEvidence(c, h.cookie.name))
	if err != nil {
		return err
	}

	body := response.StatusResponse{Authenticated: out.Authenticated}
	if out.Authenticated {
		body.User = toUserInfo(out.User)
	}

	return response.JSON(c, http.StatusOK, body)
}

func toUserInfo(user *entity.User) *response.UserInfo {
	if user == nil {
		return nil
	}

	return &response.UserInfo{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
