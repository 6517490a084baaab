package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerWithLevel(t *testing.T) {
	logger, err := NewLoggerWith(Options{Level: "warn"})
	if err != nil {
		t.Fatalf("NewLoggerWith failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestNewLoggerWithBadLevelKeepsDefault(t *testing.T) {
	logger, err := NewLoggerWith(Options{Development: true, Level: "chatty"})
	if err != nil {
		t.Fatalf("NewLoggerWith failed: %v", err)
	}
	// development config defaults to debug
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug to stay enabled")
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("LOG_LEVEL", "error")

	opts := OptionsFromEnv()
	if !opts.Development || opts.Level != "error" {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestContextHelpers(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx := WithLogger(context.Background(), base)
	if FromContext(ctx) != base {
		t.Fatal("expected logger from context")
	}

	ctx = WithFields(ctx, zap.String("request_id", "r-1"))
	L(ctx).Info("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != "r-1" {
		t.Fatalf("expected request_id field, got %v", got)
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	//nolint:staticcheck // nil context is handled on purpose
	if FromContext(nil) == nil {
		t.Fatal("expected default logger for nil context")
	}
	if FromContext(context.Background()) != DefaultLogger() {
		t.Fatal("expected default logger for empty context")
	}
}
