// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the structured logging package

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Level Tests
// =============================================================================

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
}

// =============================================================================
// File Logging Tests
// =============================================================================

func TestNew_FileLogging_CreatesLogFile(t *testing.T) {
	logDir := t.TempDir()

	logger := New(Config{
		Level:   LevelInfo,
		LogDir:  logDir,
		Service: "test-service",
		Quiet:   true,
	})
	logger.Info("hello", "key", "value")
	require.NoError(t, logger.Close())

	expected := filepath.Join(logDir,
		"test-service_"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(expected)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.Split(string(data), "\n")[0]), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "test-service", entry["service"])
}

func TestNew_FileLogging_LevelFilter(t *testing.T) {
	logDir := t.TempDir()

	logger := New(Config{
		Level:   LevelWarn,
		LogDir:  logDir,
		Service: "filter-test",
		Quiet:   true,
	})
	logger.Debug("dropped debug")
	logger.Info("dropped info")
	logger.Warn("kept warn")
	require.NoError(t, logger.Close())

	path := filepath.Join(logDir,
		"filter-test_"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.NotContains(t, content, "dropped debug")
	assert.NotContains(t, content, "dropped info")
	assert.Contains(t, content, "kept warn")
}

func TestNew_FileLogging_AppendsAcrossLoggers(t *testing.T) {
	logDir := t.TempDir()
	cfg := Config{LogDir: logDir, Service: "append-test", Quiet: true}

	first := New(cfg)
	first.Info("first line")
	require.NoError(t, first.Close())

	second := New(cfg)
	second.Info("second line")
	require.NoError(t, second.Close())

	path := filepath.Join(logDir,
		"append-test_"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first line")
	assert.Contains(t, string(data), "second line")
}

// =============================================================================
// Logger Behavior Tests
// =============================================================================

func TestWith_AddsAttributes(t *testing.T) {
	logDir := t.TempDir()

	logger := New(Config{LogDir: logDir, Service: "with-test", Quiet: true})
	logger.With("request_id", "abc123").Info("tagged")
	require.NoError(t, logger.Close())

	path := filepath.Join(logDir,
		"with-test_"+time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "abc123")
}

func TestClose_Idempotent(t *testing.T) {
	logger := New(Config{LogDir: t.TempDir(), Service: "close-test", Quiet: true})
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
}

func TestDefault_DoesNotPanic(t *testing.T) {
	logger := Default()
	logger.Info("default logger works")
	require.NoError(t, logger.Close())
}

func TestSlog_ReturnsUnderlyingLogger(t *testing.T) {
	logger := New(Config{Quiet: true})
	defer logger.Close()
	assert.NotNil(t, logger.Slog())
}

// =============================================================================
// Path Expansion Tests
// =============================================================================

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, expandPath("~"))
	assert.Equal(t, filepath.Join(home, "logs"), expandPath("~/logs"))
	assert.Equal(t, "/var/log", expandPath("/var/log"))
	assert.Equal(t, "", expandPath(""))
}
