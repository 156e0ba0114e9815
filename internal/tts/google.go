// Package tts implements domain.SpeechSynthesizer.
package tts

import (
	"context"
	"encoding/base64"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

const (
	DefaultLanguage     = "sv-SE"
	DefaultVoice        = "sv-SE-Neural2-A"
	DefaultSpeakingRate = 0.92
)

// Options selects the voice used for synthesis.
type Options struct {
	Language     string
	Voice        string
	SpeakingRate float64
	// CredentialsBase64 holds a base64 service account key. When empty the
	// client falls back to application default credentials.
	CredentialsBase64 string
}

func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	if o.Voice == "" {
		o.Voice = DefaultVoice
	}
	if o.SpeakingRate <= 0 {
		o.SpeakingRate = DefaultSpeakingRate
	}
	return o
}

type synthesizeFunc func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error)

// Google synthesizes MP3 speech with Google Cloud Text-to-Speech.
type Google struct {
	opts       Options
	synthesize synthesizeFunc
	close      func() error
}

// NewGoogle creates a Cloud Text-to-Speech client.
func NewGoogle(ctx context.Context, opts Options) (*Google, error) {
	opts = opts.withDefaults()

	var clientOpts []option.ClientOption
	if opts.CredentialsBase64 != "" {
		creds, err := base64.StdEncoding.DecodeString(opts.CredentialsBase64)
		if err != nil {
			return nil, fmt.Errorf("decode tts credentials: %w", err)
		}
		clientOpts = append(clientOpts, option.WithCredentialsJSON(creds))
	}

	client, err := texttospeech.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create tts client: %w", err)
	}

	return &Google{
		opts: opts,
		synthesize: func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
			return client.SynthesizeSpeech(ctx, req)
		},
		close: client.Close,
	}, nil
}

func (g *Google) request(text string) *texttospeechpb.SynthesizeSpeechRequest {
	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: g.opts.Language,
			Name:         g.opts.Voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  g.opts.SpeakingRate,
		},
	}
}

func (g *Google) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.synthesize(ctx, g.request(text))
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	if len(resp.GetAudioContent()) == 0 {
		return nil, fmt.Errorf("%w: no audio content", domain.ErrSynthesis)
	}
	return resp.GetAudioContent(), nil
}

func (g *Google) Close() error {
	return g.close()
}

// Unavailable is used when no provider is configured. Clients fall back to
// on-device speech synthesis.
type Unavailable struct{}

func (Unavailable) Synthesize(context.Context, string) ([]byte, error) {
	return nil, fmt.Errorf("%w: %w", domain.ErrSynthesis, domain.ErrNotConfigured)
}
