package handler

import (
	"net/http"
	"time"

	"languagebot/config"
)

type cookieSettings struct {
	name   string
	secure bool
}

func newCookieSettings(cfg *config.Config) cookieSettings {
	return cookieSettings{
		name:   cfg.Session.CookieName,
		secure: cfg.IsProduction(),
	}
}

func (s cookieSettings) issue(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s cookieSettings) clear() *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
