package provider

import (
	"context"
)

const (
	DefaultLanguage = "en"

	FormatMP3 = "mp3"

	ContentTypeMP3 = "audio/mpeg"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	Language string

	Voice string
	Speed *float32

	Format string
}

type Synthesis struct {
	ID    string
	Model string

	Content     []byte
	ContentType string
}
