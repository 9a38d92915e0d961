package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := log
	var buf bytes.Buffer
	log = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { log = prev })
	return &buf
}

func TestHTTPLog_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
		msg    string
	}{
		{200, "INFO", "HTTP Request"},
		{404, "WARN", "HTTP Client Error"},
		{500, "ERROR", "HTTP Server Error"},
	}

	for _, tt := range tests {
		buf := captureLogs(t)
		ctx := WithUser(WithRequestID(context.Background(), "req-1"), "user-1", "ada@example.com")

		HTTPLog(ctx, "GET", "/health", "127.0.0.1", tt.status, 15*time.Millisecond, 42)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
		assert.Equal(t, tt.level, entry["level"])
		assert.Equal(t, tt.msg, entry["msg"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "user-1", entry["user_id"])
		assert.EqualValues(t, tt.status, entry["status"])
		assert.EqualValues(t, 15, entry["duration_ms"])
	}
}
