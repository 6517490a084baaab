package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "CATALOG_BACKEND", "REDIS_ADDR", "CATALOG_PREFIX", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT", "MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg := loaded.WithDefaults()

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %s, got %s", DefaultPort, cfg.Port)
	}
	if cfg.CatalogBackend != "memory" {
		t.Errorf("expected memory backend, got %s", cfg.CatalogBackend)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("expected request timeout %v, got %v", DefaultRequestTimeout, cfg.RequestTimeout)
	}
	if cfg.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Errorf("expected max body %d, got %d", DefaultMaxBodyBytes, cfg.MaxBodyBytes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CATALOG_PREFIX", "cars")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("SHUTDOWN_TIMEOUT", "500ms")
	t.Setenv("MAX_BODY_BYTES", "1024")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg := loaded.WithDefaults()

	if cfg.Port != "9090" || cfg.CatalogBackend != "redis" || cfg.RedisAddr != "redis:6379" || cfg.CatalogPrefix != "cars" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("expected 2s, got %v", cfg.RequestTimeout)
	}
	if cfg.ShutdownTimeout != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", cfg.ShutdownTimeout)
	}
	if cfg.MaxBodyBytes != 1024 {
		t.Errorf("expected 1024, got %d", cfg.MaxBodyBytes)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "request timeout", key: "REQUEST_TIMEOUT", value: "soon"},
		{name: "shutdown timeout", key: "SHUTDOWN_TIMEOUT", value: "10"},
		{name: "max body", key: "MAX_BODY_BYTES", value: "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "memory", cfg: Config{Port: "8080", CatalogBackend: "memory"}},
		{name: "redis", cfg: Config{Port: "8080", CatalogBackend: "redis", RedisAddr: "localhost:6379"}},
		{name: "redis without addr", cfg: Config{Port: "8080", CatalogBackend: "redis"}, wantErr: true},
		{name: "unknown backend", cfg: Config{Port: "8080", CatalogBackend: "dynamo"}, wantErr: true},
		{name: "bad port", cfg: Config{Port: "http", CatalogBackend: "memory"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
