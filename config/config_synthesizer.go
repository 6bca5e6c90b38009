package config

import (
	"bytes"
	"errors"
	"strings"

	"github.com/adrianliechti/text2speech/pkg/otel"
	"github.com/adrianliechti/text2speech/pkg/provider"
	"github.com/adrianliechti/text2speech/pkg/provider/gtts"
	"github.com/adrianliechti/text2speech/pkg/provider/openai"

	"gopkg.in/yaml.v3"
)

func (cfg *Config) RegisterSynthesizer(id string, p provider.Synthesizer) {
	if cfg.synthesizer == nil {
		cfg.synthesizer = make(map[string]provider.Synthesizer)
	}

	if _, ok := cfg.synthesizer[""]; !ok {
		cfg.synthesizer[""] = p
	}

	cfg.synthesizer[id] = p
}

func (cfg *Config) Synthesizer(id string) (provider.Synthesizer, error) {
	if cfg.synthesizer != nil {
		if s, ok := cfg.synthesizer[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("synthesizer not found: " + id)
}

type synthesizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`
	Voice string `yaml:"voice"`

	TLD  string `yaml:"tld"`
	Slow bool   `yaml:"slow"`
}

func (cfg *Config) registerSynthesizers(f *configFile) error {
	if f.Synthesizers.Kind != yaml.MappingNode {
		return errors.New("no synthesizer configured")
	}

	// mapping nodes alternate key and value; keys keep the file order
	for i := 0; i+1 < len(f.Synthesizers.Content); i += 2 {
		id := f.Synthesizers.Content[i].Value

		config, err := decodeStrict[synthesizerConfig](f.Synthesizers.Content[i+1])

		if err != nil {
			return errors.New("synthesizer " + id + ": " + err.Error())
		}

		synthesizer, err := cfg.createSynthesizer(config)

		if err != nil {
			return errors.New("synthesizer " + id + ": " + err.Error())
		}

		model := config.Model

		if model == "" {
			model = strings.ToLower(config.Type)
		}

		cfg.RegisterSynthesizer(id, otel.NewSynthesizer(strings.ToLower(config.Type), model, synthesizer))
	}

	if len(cfg.synthesizer) == 0 {
		return errors.New("no synthesizer configured")
	}

	return nil
}

func (cfg *Config) createSynthesizer(c synthesizerConfig) (provider.Synthesizer, error) {
	switch strings.ToLower(c.Type) {
	case "gtts", "google":
		return cfg.gttsSynthesizer(c)

	case "openai", "openai-compatible":
		return openaiSynthesizer(c)

	default:
		return nil, errors.New("invalid synthesizer type: " + c.Type)
	}
}

func (cfg *Config) gttsSynthesizer(c synthesizerConfig) (provider.Synthesizer, error) {
	options := []gtts.Option{
		gtts.WithLanguage(cfg.Language),
		gtts.WithSlow(c.Slow),
	}

	if c.TLD != "" {
		options = append(options, gtts.WithTLD(c.TLD))
	}

	return gtts.NewSynthesizer(c.URL, options...)
}

func openaiSynthesizer(c synthesizerConfig) (provider.Synthesizer, error) {
	var options []openai.Option

	if c.Token != "" {
		options = append(options, openai.WithToken(c.Token))
	}

	if c.Voice != "" {
		options = append(options, openai.WithVoice(c.Voice))
	}

	return openai.NewSynthesizer(c.URL, c.Model, options...)
}

// decodeStrict decodes node rejecting unknown keys; yaml.Node.Decode does not
// honor the decoder's KnownFields setting.
func decodeStrict[T any](node *yaml.Node) (T, error) {
	var result T

	data, err := yaml.Marshal(node)

	if err != nil {
		return result, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&result); err != nil {
		return result, err
	}

	return result, nil
}
