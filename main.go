package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/dagligsvensk/internal/cache"
	"github.com/msomdec/dagligsvensk/internal/config"
	"github.com/msomdec/dagligsvensk/internal/domain"
	"github.com/msomdec/dagligsvensk/internal/handler"
	"github.com/msomdec/dagligsvensk/internal/metrics"
	"github.com/msomdec/dagligsvensk/internal/repository/sqlite"
	"github.com/msomdec/dagligsvensk/internal/service"
	"github.com/msomdec/dagligsvensk/internal/tts"
)

// Per-IP budget for signup, signin, contact and TTS: bursts of 10, refilled
// at one request every two seconds.
const (
	limiterRate     = 0.5
	limiterCapacity = 10
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied", "path", cfg.DatabasePath)

	audioCache, err := newAudioCache(ctx, cfg, db)
	if err != nil {
		slog.Error("failed to connect audio cache", "error", err)
		os.Exit(1)
	}
	defer audioCache.Close()

	synth, closeSynth := newSynthesizer(ctx, cfg)
	defer closeSynth()

	m := metrics.New()
	limiter := service.NewTokenBucket(ctx, limiterRate, limiterCapacity)

	svc := handler.Services{
		Auth:     service.NewAuthService(db.Users(), cfg.JWTSecret, cfg.BcryptCost),
		Profiles: service.NewProfileService(db.Users()),
		Progress: service.NewProgressService(db.Progress(), nil).WithRecorder(m),
		Lessons:  service.NewLessonService(),
		Audio:    service.NewAudioService(synth, audioCache).WithRecorder(m),
		Contacts: service.NewContactService(db.Contacts()),
		Limiter:  limiter,
		DB:       db,
		Metrics:  m,
	}

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handler.NewServer(svc, handler.Options{
			CookieSecure: cfg.CookieSecure,
			StripeKey:    cfg.StripeSecretKey != "",
		}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func newAudioCache(ctx context.Context, cfg *config.Config, db *sqlite.DB) (domain.AudioCache, error) {
	slog.Info("audio cache", "backend", cfg.AudioCache, "ttl", cfg.AudioCacheTTL)
	switch cfg.AudioCache {
	case "redis":
		return cache.NewRedis(ctx, cfg.RedisURL, cfg.AudioCacheTTL)
	case "sqlite":
		return db.AudioStore(cfg.AudioCacheTTL), nil
	default:
		return cache.NewMemory(cfg.AudioCacheSize, cfg.AudioCacheTTL), nil
	}
}

// newSynthesizer falls back to tts.Unavailable when Google credentials are
// missing or the client cannot be created, so /api/tts answers 501.
func newSynthesizer(ctx context.Context, cfg *config.Config) (domain.SpeechSynthesizer, func()) {
	noop := func() {}
	if !cfg.TTSConfigured() {
		slog.Warn("text-to-speech not configured; /api/tts will answer 501")
		return tts.Unavailable{}, noop
	}

	g, err := tts.NewGoogle(ctx, tts.Options{
		Language:          cfg.TTSLanguage,
		Voice:             cfg.TTSVoice,
		SpeakingRate:      cfg.TTSSpeakingRate,
		CredentialsBase64: cfg.TTSCredentials,
	})
	if err != nil {
		slog.Error("failed to create text-to-speech client", "error", err)
		return tts.Unavailable{}, noop
	}
	return g, func() {
		if err := g.Close(); err != nil {
			slog.Warn("close text-to-speech client", "error", err)
		}
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
