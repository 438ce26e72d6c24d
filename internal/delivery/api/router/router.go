// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"languagebot/internal/delivery/api/middleware"
	"languagebot/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CredentialHandler *handler.CredentialHandler
	ProxyHandler      *handler.ProxyHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Gatherer          prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	credentialHandler *handler.CredentialHandler
	proxyHandler      *handler.ProxyHandler
	authMiddleware    *middleware.AuthMiddleware
	gatherer          prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		credentialHandler: params.CredentialHandler,
		proxyHandler:      params.ProxyHandler,
		authMiddleware:    params.AuthMiddleware,
		gatherer:          params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.gatherer != nil {
		e.GET("/metrics", handler.MetricsHandler(r.gatherer))
	}

	// Session lifecycle; these read evidence themselves and never require it
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/status", r.authHandler.Status)
	}

	credentialGroup := e.Group("/credential")
	credentialGroup.Use(r.authMiddleware.Authenticate)
	{
		credentialGroup.POST("", r.credentialHandler.Save)
		credentialGroup.GET("", r.credentialHandler.HasKey)
		credentialGroup.DELETE("", r.credentialHandler.Delete)
	}

	proxyMethods := []string{http.MethodGet, http.MethodPost}
	proxyGroup := e.Group(handler.ProxyPrefix)
	proxyGroup.Use(r.authMiddleware.Authenticate)
	{
		proxyGroup.Match(proxyMethods, "", r.proxyHandler.Forward)
		proxyGroup.Match(proxyMethods, "/*", r.proxyHandler.Forward)
	}
}
