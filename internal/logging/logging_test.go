package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  LogConfig
		wantErr bool
	}{
		{"stdout only", LogConfig{Level: "info"}, false},
		{"file with rotation", LogConfig{Level: "debug", File: "app.log", MaxSize: 10, MaxBackups: 3, MaxAge: 7}, false},
		{"upper case level", LogConfig{Level: "WARN"}, false},
		{"unknown level", LogConfig{Level: "verbose"}, true},
		{"file without size", LogConfig{Level: "info", File: "app.log"}, true},
		{"negative backups", LogConfig{Level: "info", MaxBackups: -1}, true},
		{"negative age", LogConfig{Level: "info", MaxAge: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, err := NewLogger(&LogConfig{Level: LevelWarn})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger.Logger = log.New(&buf, "", 0)

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %d", 3)
	logger.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "error 4")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestLoggerRequestLogging(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		logger, err := NewLogger(&LogConfig{Level: LevelInfo, Requests: enabled})
		require.NoError(t, err)

		var buf bytes.Buffer
		logger.Logger = log.New(&buf, "", 0)

		logger.LogHTTPRequest("GET", "/api/v1/posts", "10.0.0.1", 200, 12, "1ms")
		logger.LogHTTPError("POST", "/api/v1/contact", "10.0.0.1", 400, "bad request", nil)
		logger.LogHTTPError("POST", "/api/v1/contact", "10.0.0.1", 500, "boom", nil)

		out := buf.String()
		assert.Contains(t, out, "boom")
		if enabled {
			assert.Contains(t, out, "/api/v1/posts")
			assert.Contains(t, out, "bad request")
		} else {
			assert.NotContains(t, out, "/api/v1/posts")
			assert.NotContains(t, out, "bad request")
		}
	}
}

func TestLoggerWritesRotatedFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(&LogConfig{
		Level:      LevelInfo,
		File:       dir + "/logs/api.log",
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("hello %s", "file")
	assert.FileExists(t, dir+"/logs/api.log")
}

func TestGetGlobalLoggerWithoutInit(t *testing.T) {
	assert.NotNil(t, GetGlobalLogger())
}
