package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"languagebot/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishAuditEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.AuditEvent{
		EventID:    "evt-1",
		RequestID:  "req-1",
		Type:       service.AuditEventCredentialSaved,
		UserID:     42,
		OccurredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishAuditEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "credential.saved", received.Message.Attributes["event_type"])
	assert.Equal(t, "42", received.Message.Attributes["user_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.AuditEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, int64(42), decoded.UserID)
	assert.Equal(t, service.AuditEventCredentialSaved, decoded.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishAuditEvent(context.Background(), &service.AuditEvent{EventID: "evt-2", Type: service.AuditEventUserLogin})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, publisher.PublishAuditEvent(context.Background(), &service.AuditEvent{Type: service.AuditEventUserLogin}))
	assert.NoError(t, publisher.Close())
}
