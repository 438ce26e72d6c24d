package handler

import (
	"log/slog"
	"net/http"

	"languagebot/internal/delivery/api/middleware"
	"languagebot/internal/delivery/api/response"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CredentialHandlerParams holds dependencies for CredentialHandler, injected by Fx.
type CredentialHandlerParams struct {
	fx.In

	Vault  usecase.CredentialVault
	Logger *slog.Logger
}

// CredentialHandler manages the caller's stored upstream API key.
type CredentialHandler struct {
	vault  usecase.CredentialVault
	logger *slog.Logger
}

// NewCredentialHandler is the constructor for CredentialHandler
func NewCredentialHandler(params CredentialHandlerParams) *CredentialHandler {
	return &CredentialHandler{
		vault:  params.Vault,
		logger: params.Logger,
	}
}

// SaveCredentialRequest is the body of POST /credential.
type SaveCredentialRequest struct {
	APIKey string `json:"apiKey" validate:"required"`
}

// Save stores the caller's key, replacing any previous one.
func (h *CredentialHandler) Save(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var req SaveCredentialRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "apiKey must be a string")
	}

	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "apiKey is required")
	}

	if err := h.vault.Save(c.Request().Context(), session.UserID, req.APIKey); err != nil {
		return err
	}

	return response.Success(c)
}

// HasKey reports whether the caller has a stored key. The fallback key is not considered.
func (h *CredentialHandler) HasKey(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	hasKey, err := h.vault.HasKey(c.Request().Context(), session.UserID)
	if err != nil {
		return err
	}
	if !hasKey {
		return errors.WithStack(domainerrors.ErrCredentialNotFound)
	}

	return response.JSON(c, http.StatusOK, response.HasKeyResponse{HasKey: true})
}

// Delete removes the caller's key.
func (h *CredentialHandler) Delete(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if err := h.vault.Delete(c.Request().Context(), session.UserID); err != nil {
		return err
	}

	return response.Success(c)
}
