package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

const maxSpeechLength = 200

// CacheRecorder counts audio cache lookups.
type CacheRecorder interface {
	AudioCacheHit()
	AudioCacheMiss()
}

// AudioService synthesizes Swedish speech, memoizing results by exact text.
type AudioService struct {
	synth    domain.SpeechSynthesizer
	cache    domain.AudioCache
	group    singleflight.Group
	recorder CacheRecorder
}

func NewAudioService(synth domain.SpeechSynthesizer, cache domain.AudioCache) *AudioService {
	return &AudioService{synth: synth, cache: cache}
}

// WithRecorder sets the cache lookup recorder.
func (s *AudioService) WithRecorder(r CacheRecorder) *AudioService {
	s.recorder = r
	return s
}

// Synthesize returns MP3 audio for text. Concurrent requests for the same
// text share one upstream call.
func (s *AudioService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > maxSpeechLength {
		return nil, fmt.Errorf("%w: text must be at most %d characters", domain.ErrInvalidInput, maxSpeechLength)
	}

	audio, ok, err := s.cache.Get(ctx, text)
	if err != nil {
		slog.Warn("audio cache get", "error", err)
	}
	if ok {
		if s.recorder != nil {
			s.recorder.AudioCacheHit()
		}
		return audio, nil
	}
	if s.recorder != nil {
		s.recorder.AudioCacheMiss()
	}

	// Shared callers must not fail because the first one went away.
	upstreamCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(text, func() (any, error) {
		audio, err := s.synth.Synthesize(upstreamCtx, text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrSynthesis, err)
		}
		if len(audio) == 0 {
			return nil, fmt.Errorf("%w: empty audio", domain.ErrSynthesis)
		}
		if err := s.cache.Set(upstreamCtx, text, audio); err != nil {
			slog.Warn("audio cache set", "error", err)
		}
		return audio, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
