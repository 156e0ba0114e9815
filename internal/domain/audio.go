package domain

import "context"

// SpeechSynthesizer turns text into encoded audio (MP3).
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// AudioCache stores synthesized audio keyed by the exact source text.
// Implementations bound their size or lifetime.
type AudioCache interface {
	Get(ctx context.Context, text string) ([]byte, bool, error)
	Set(ctx context.Context, text string, audio []byte) error
	Close() error
}
