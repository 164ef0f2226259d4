package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/shared/config"
)

func TestInitAndSetLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	err := Init(&config.LoggerConfig{
		Level:      "warn",
		Format:     "json",
		OutputPath: logPath,
	})
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, Get().Enabled(ctx, slog.LevelInfo))
	assert.True(t, Get().Enabled(ctx, slog.LevelWarn))

	SetLevel(slog.LevelDebug)
	assert.True(t, Get().Enabled(ctx, slog.LevelDebug))
}

func TestWithComponent(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")

	err := Init(&config.LoggerConfig{
		Level:      "info",
		Format:     "json",
		OutputPath: logPath,
	})
	require.NoError(t, err)

	WithComponent("database").Info("connection established")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"component":"database"`)
	assert.Contains(t, string(content), "connection established")
}

func TestNewLoggerWithSlog(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithSlog(slog.New(slog.NewJSONHandler(&buf, nil)))

	l.Infow("ticket created", "ticket_id", 7, "forwarded", true)

	out := buf.String()
	assert.Contains(t, out, `"msg":"ticket created"`)
	assert.Contains(t, out, `"ticket_id":7`)
	assert.Contains(t, out, `"forwarded":true`)
}

func TestLoggerNamedAndWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithSlog(slog.New(slog.NewJSONHandler(&buf, nil)))

	l.Named("webhook").With("url", "http://localhost:5678").Warnw("webhook call failed")

	out := buf.String()
	assert.Contains(t, out, `"logger":"webhook"`)
	assert.Contains(t, out, `"url":"http://localhost:5678"`)
}
