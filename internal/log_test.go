package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"ERROR": LogLevelError,
		"warn":  LogLevelWarn,
		" Info": LogLevelInfo,
		"DEBUG": LogLevelDebug,
		"trace": LogLevelTrace,
	}
	for in, want := range cases {
		got, ok := ParseLogLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	got, ok := ParseLogLevel("chatty")
	assert.False(t, ok)
	assert.Equal(t, LogLevelInfo, got)
}

func TestLoggerGatesByLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(LogLevelWarn, zap.New(core))

	logger.Error("boom %d", 1)
	logger.Warn("careful")
	logger.Info("hidden")
	logger.Debug("hidden")
	logger.Trace("hidden")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "boom 1", entries[0].Message)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, "careful", entries[1].Message)
	}
}

func TestLoggerTraceAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(LogLevelTrace, zap.New(core)).With("component", "test")

	logger.Trace("step %s", "one")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "step one", entries[0].Message)
		assert.Equal(t, "test", fields["component"])
		assert.Equal(t, true, fields["trace"])
	}
}

func TestNewDefaultLoggerReadsLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "trace")
	assert.Equal(t, LogLevelTrace, NewDefaultLogger(LogLevelWarn).GetLevel())

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, LogLevelWarn, NewDefaultLogger(LogLevelWarn).GetLevel())

	t.Setenv("LOG_LEVEL", "chatty")
	assert.Equal(t, LogLevelError, NewDefaultLogger(LogLevelError).GetLevel())
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Error("discarded")
	assert.Equal(t, LogLevelError, logger.GetLevel())
}
