package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"languagebot/config"
	"languagebot/internal/domain/service"
	"languagebot/internal/infra/metrics"
	"languagebot/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	h := NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Metrics: metrics.NewAuditMetrics(reg),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, reg
}

func pushBody(t *testing.T, event any) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_AcceptsLocalPublisherEnvelope(t *testing.T) {
	h, reg := newTestPushHandler(t, &config.Config{})

	e := echo.New()
	e.POST("/push", h.HandlePush)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	publisher := pubsub.NewLocalHTTPPublisher(srv.URL+"/push", slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishAuditEvent(context.Background(), &service.AuditEvent{
		EventID:    "e-1",
		RequestID:  "r-1",
		Type:       service.AuditEventCredentialSaved,
		UserID:     42,
		OccurredAt: time.Now().UTC(),
	})

	require.NoError(t, err)

	expected := `
# HELP languagebot_audit_events_total Audit events received by the worker, by type and result
# TYPE languagebot_audit_events_total counter
languagebot_audit_events_total{result="accepted",type="credential.saved"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "languagebot_audit_events_total"))
}

func TestPushHandler_Responses(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "malformed json", body: `{`, wantCode: http.StatusBadRequest},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`, wantCode: http.StatusBadRequest},
		{name: "unknown type acknowledged", body: pushBody(t, map[string]any{"type": "made.up"}), wantCode: http.StatusOK},
		{name: "login", body: pushBody(t, service.AuditEvent{EventID: "e", Type: service.AuditEventUserLogin, UserID: 1}), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, &config.Config{})

			rec := servePush(h, tt.body, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesTokenForGoogleInProduction(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"
	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	body := pushBody(t, service.AuditEvent{Type: service.AuditEventUserLogin, UserID: 1})

	rec := servePush(h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h.verifyToken = func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("bad signature")
	}
	rec = servePush(h, body, http.Header{"Authorization": []string{"Bearer t"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var gotAudience string
	h.verifyToken = func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}
	rec = servePush(h, body, http.Header{"Authorization": []string{"Bearer t"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/push", gotAudience)
}

func TestPushHandler_AudienceHonoursForwardedProto(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"
	h, _ := newTestPushHandler(t, cfg)

	var gotAudience string
	h.verifyToken = func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{Issuer: "accounts.google.com"}, nil
	}

	body := pushBody(t, service.AuditEvent{Type: service.AuditEventCredentialSaved, UserID: 2})
	rec := servePush(h, body, http.Header{
		"Authorization":     []string{"Bearer t"},
		"X-Forwarded-Proto": []string{"https"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.com/push", gotAudience)
}
