// Package config loads the registry service configuration from the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied by WithDefaults.
const (
	DefaultPort            = "8080"
	DefaultCatalogBackend  = "memory"
	DefaultRedisAddr       = "127.0.0.1:6379"
	DefaultCatalogPrefix   = "flyweight"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 64 * 1024
)

type Config struct {
	Port           string
	CatalogBackend string // "memory" or "redis"
	RedisAddr      string
	CatalogPrefix  string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// Load reads the configuration from environment variables. Unset variables
// are left zero; call WithDefaults before use.
func Load() (Config, error) {
	cfg := Config{
		Port:           os.Getenv("PORT"),
		CatalogBackend: os.Getenv("CATALOG_BACKEND"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		CatalogPrefix:  os.Getenv("CATALOG_PREFIX"),
	}

	var err error
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("MAX_BODY_BYTES: %w", err)
		}
		cfg.MaxBodyBytes = n
	}

	return cfg, nil
}

// WithDefaults returns a copy of Config with sane defaults applied.
func (c *Config) WithDefaults() Config {
	cfg := *c

	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.CatalogBackend == "" {
		cfg.CatalogBackend = DefaultCatalogBackend
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = DefaultRedisAddr
	}
	if cfg.CatalogPrefix == "" {
		cfg.CatalogPrefix = DefaultCatalogPrefix
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return cfg
}

// Validate checks the fields that have no sensible default.
func (c *Config) Validate() error {
	switch c.CatalogBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown catalog backend %q", c.CatalogBackend)
	}
	if c.CatalogBackend == "redis" && c.RedisAddr == "" {
		return errors.New("REDIS_ADDR is required for the redis catalog")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	return nil
}

func durationEnv(key string) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
