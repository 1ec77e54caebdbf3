package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPAddr     = ":8080"
	defaultCacheTTL     = "5m"
	defaultJWTTTL       = "24h"
	defaultWidgetAPIKey = "change-me-widget-key"
	defaultJWTSecret    = "change-me-jwt-secret"
)

// Config is the runtime configuration of the booking API, loaded from the
// environment with local-dev defaults. Production deployments must override
// the key and secret defaults.
type Config struct {
	AppEnv       string
	HTTPAddr     string
	DatabaseURL  string
	WidgetAPIKey string
	JWTSecret    string
	JWTTTL       time.Duration
	CacheTTL     time.Duration

	// FailLoud disables the fallback-dataset policy on the widget read path:
	// storage errors surface as 500s instead of flagged synthetic data.
	FailLoud bool

	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.WidgetAPIKey = strings.TrimSpace(getEnv("WIDGET_API_KEY", defaultWidgetAPIKey))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL, err = parseDurationEnv("AVAILABILITY_CACHE_TTL", defaultCacheTTL)
	if err != nil {
		return nil, err
	}

	cfg.FailLoud, err = parseBoolEnv("AVAILABILITY_FAIL_LOUD", "false")
	if err != nil {
		return nil, err
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	if cfg.AppEnv != "dev" {
		if cfg.WidgetAPIKey == defaultWidgetAPIKey {
			return nil, fmt.Errorf("config: WIDGET_API_KEY must be set outside dev")
		}
		if cfg.JWTSecret == defaultJWTSecret {
			return nil, fmt.Errorf("config: JWT_SECRET must be set outside dev")
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s=%q: %w", key, raw, err)
	}
	return d, nil
}

func parseBoolEnv(key, def string) (bool, error) {
	raw := getEnv(key, def)
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s=%q: %w", key, raw, err)
	}
	return b, nil
}
