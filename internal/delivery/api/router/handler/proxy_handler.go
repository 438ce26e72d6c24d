package handler

import (
	"io"
	"log/slog"
	"strings"

	"languagebot/internal/delivery/api/middleware"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProxyPrefix is the route prefix stripped before forwarding.
const ProxyPrefix = "/proxy"

// ProxyHandlerParams holds dependencies for ProxyHandler, injected by Fx.
type ProxyHandlerParams struct {
	fx.In

	ProxyUC usecase.ProxyUsecase
	Logger  *slog.Logger
}

// ProxyHandler relays /proxy/* to the upstream service.
type ProxyHandler struct {
	proxyUC usecase.ProxyUsecase
	logger  *slog.Logger
}

// NewProxyHandler is the constructor for ProxyHandler
func NewProxyHandler(params ProxyHandlerParams) *ProxyHandler {
	return &ProxyHandler{
		proxyUC: params.ProxyUC,
		logger:  params.Logger,
	}
}

// Forward relays the request body unmodified and answers with the upstream status and body.
func (h *ProxyHandler) Forward(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	req := c.Request()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("unreadable request body"))
	}

	out, err := h.proxyUC.Forward(req.Context(), &usecase.ForwardInput{
		UserID:   session.UserID,
		Method:   req.Method,
		Path:     upstreamPath(req.URL.EscapedPath()),
		RawQuery: req.URL.RawQuery,
		Header:   req.Header,
		Body:     body,
	})
	if err != nil {
		return err
	}

	for key, values := range out.Header {
		for _, value := range values {
			c.Response().Header().Add(key, value)
		}
	}
	c.Response().WriteHeader(out.StatusCode)
	_, err = c.Response().Write(out.Body)

	return errors.WithStack(err)
}

// upstreamPath strips the proxy prefix, keeping the escaped form so encoded
// separators are judged by the upstream client.
func upstreamPath(escaped string) string {
	path := strings.TrimPrefix(escaped, ProxyPrefix)
	if path == "" {
		return "/"
	}

	return path
}
