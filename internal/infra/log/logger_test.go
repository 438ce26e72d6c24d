package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"languagebot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_RedactsCredentialAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "languagebot"
	cfg.Env.Env = "test"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("saving", slog.String("apiKey", "sk-secret"), slog.Int64("user_id", 7))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "[REDACTED]", line["apiKey"])
	assert.EqualValues(t, 7, line["user_id"])
	assert.Equal(t, "languagebot", line["service"])
	assert.Equal(t, "test", line["env"])
	assert.NotContains(t, buf.String(), "sk-secret")
}
