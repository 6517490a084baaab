package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"flyweight-registry/internal/car"
	"flyweight-registry/internal/flyweight"
)

func TestRunSharesModels(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	registry := car.NewRegistry(flyweight.WithObserver(car.NewLoggingObserver(zap.New(core))))

	var out bytes.Buffer
	if err := run(&out, registry); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if got := strings.Count(out.String(), "Car Details:"); got != 3 {
		t.Fatalf("expected 3 cars displayed, got %d", got)
	}
	if !strings.HasSuffix(out.String(), "Distinct car flyweights: 2\n") {
		t.Fatalf("unexpected summary: %s", out.String())
	}

	if n := logs.FilterMessage("creating new car flyweight").Len(); n != 2 {
		t.Fatalf("expected 2 creations, got %d", n)
	}
	if n := logs.FilterMessage("reusing existing car flyweight").Len(); n != 1 {
		t.Fatalf("expected 1 reuse, got %d", n)
	}
}
