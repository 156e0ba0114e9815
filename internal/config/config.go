// Package config reads process configuration from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const minJWTSecretLength = 32

// Config holds every setting the server reads at startup.
type Config struct {
	Port         string
	Env          string
	CookieSecure bool
	DatabasePath string
	JWTSecret    string
	BcryptCost   int
	LogLevel     string

	TTSCredentials        string
	TTSApplicationDefault bool
	TTSVoice              string
	TTSLanguage           string
	TTSSpeakingRate       float64

	// AudioCache is memory, redis or sqlite.
	AudioCache     string
	AudioCacheSize int
	AudioCacheTTL  time.Duration
	RedisURL       string

	StripeSecretKey string
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// TTSConfigured reports whether any Google credentials are available.
func (c *Config) TTSConfigured() bool {
	return c.TTSCredentials != "" || c.TTSApplicationDefault
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads configuration from the environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:                  envOrDefault("PORT", "8080"),
		Env:                   envOrDefault("APP_ENV", "development"),
		DatabasePath:          envOrDefault("DATABASE_PATH", "dagligsvensk.db"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		LogLevel:              strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
		TTSCredentials:        os.Getenv("GOOGLE_TTS_CREDENTIALS"),
		TTSApplicationDefault: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "",
		TTSVoice:              envOrDefault("GOOGLE_TTS_VOICE", "sv-SE-Neural2-A"),
		TTSLanguage:           envOrDefault("GOOGLE_TTS_LANGUAGE", "sv-SE"),
		RedisURL:              os.Getenv("REDIS_URL"),
		StripeSecretKey:       os.Getenv("STRIPE_SECRET_KEY"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < minJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters for HMAC-SHA256 security", minJWTSecretLength)
	}

	cfg.CookieSecure = cfg.IsProduction()
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = secure
	}

	var err error
	if cfg.BcryptCost, err = envInt("BCRYPT_COST", 10); err != nil {
		return nil, err
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.BcryptCost)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}

	if cfg.TTSSpeakingRate, err = envFloat("GOOGLE_TTS_RATE", 0.92); err != nil {
		return nil, err
	}
	if cfg.TTSSpeakingRate < 0.25 || cfg.TTSSpeakingRate > 4 {
		return nil, fmt.Errorf("GOOGLE_TTS_RATE must be between 0.25 and 4, got %v", cfg.TTSSpeakingRate)
	}

	if cfg.AudioCacheSize, err = envInt("AUDIO_CACHE_SIZE", 512); err != nil {
		return nil, err
	}
	if cfg.AudioCacheSize < 1 {
		return nil, fmt.Errorf("AUDIO_CACHE_SIZE must be positive, got %d", cfg.AudioCacheSize)
	}

	cfg.AudioCacheTTL = 24 * time.Hour
	if v := os.Getenv("AUDIO_CACHE_TTL"); v != "" {
		if cfg.AudioCacheTTL, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid AUDIO_CACHE_TTL: %w", err)
		}
		if cfg.AudioCacheTTL <= 0 {
			return nil, fmt.Errorf("AUDIO_CACHE_TTL must be positive, got %s", cfg.AudioCacheTTL)
		}
	}

	defaultCache := "memory"
	if cfg.RedisURL != "" {
		defaultCache = "redis"
	}
	cfg.AudioCache = strings.ToLower(envOrDefault("AUDIO_CACHE", defaultCache))
	switch cfg.AudioCache {
	case "memory", "sqlite":
	case "redis":
		if cfg.RedisURL == "" {
			return nil, errors.New("AUDIO_CACHE=redis requires REDIS_URL")
		}
	default:
		return nil, fmt.Errorf("AUDIO_CACHE must be one of memory, redis, sqlite, got %q", cfg.AudioCache)
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, defaultVal float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
