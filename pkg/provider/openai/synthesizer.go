package openai

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/adrianliechti/text2speech/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.model == "" {
		cfg.model = openai.SpeechModelTTS1
	}

	if cfg.voice == "" {
		cfg.voice = string(openai.AudioSpeechNewParamsVoiceAlloy)
	}

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
	}, nil
}

// Synthesize ignores options.Language; the speech endpoint detects the
// language from the input.
func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	if options.Format != "" && !strings.EqualFold(options.Format, provider.FormatMP3) {
		return nil, ErrUnsupportedFormat
	}

	if strings.TrimSpace(content) == "" {
		return nil, provider.ErrEmptyInput
	}

	voice := s.voice

	if options.Voice != "" {
		voice = options.Voice
	}

	params := openai.AudioSpeechNewParams{
		Model: s.model,
		Input: content,

		Voice: openai.AudioSpeechNewParamsVoice(voice),

		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	}

	if options.Speed != nil {
		params.Speed = openai.Float(float64(*options.Speed))
	}

	result, err := s.speech.New(ctx, params)

	if err != nil {
		return nil, convertError(err)
	}

	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: provider.ContentTypeMP3,
	}, nil
}
