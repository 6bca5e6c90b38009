package gtts

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/adrianliechti/text2speech/pkg/provider"
	"github.com/adrianliechti/text2speech/pkg/text"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

const (
	rpcID = "jQ1olc"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/47.0.2526.106 Safari/537.36"
)

var audioPattern = regexp.MustCompile(rpcID + `","\[\\"(.*)\\"]`)

type Synthesizer struct {
	*Config

	tokenizer text.Tokenizer
}

func NewSynthesizer(url string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url: url,
		tld: "com",

		language: provider.DefaultLanguage,

		client: http.DefaultClient,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.url == "" {
		cfg.url = "https://translate.google." + cfg.tld
	}

	language, ok := normalizeLanguage(cfg.language)

	if !ok {
		return nil, fmt.Errorf("unsupported language: %q", cfg.language)
	}

	cfg.language = language

	return &Synthesizer{
		Config: cfg,

		tokenizer: text.NewTokenizer(),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	if options.Format != "" && !strings.EqualFold(options.Format, provider.FormatMP3) {
		return nil, ErrUnsupportedFormat
	}

	language := s.language

	if options.Language != "" {
		val, ok := normalizeLanguage(options.Language)

		if !ok {
			return nil, fmt.Errorf("unsupported language: %q", options.Language)
		}

		language = val
	}

	slow := s.slow

	if options.Speed != nil {
		slow = *options.Speed < 1
	}

	parts := s.tokenizer.Tokenize(content)

	if len(parts) == 0 {
		return nil, ErrNoText
	}

	var audio bytes.Buffer

	for _, part := range parts {
		if err := s.synthesizePart(ctx, part, language, slow, &audio); err != nil {
			return nil, err
		}
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: "gtts",

		Content:     audio.Bytes(),
		ContentType: provider.ContentTypeMP3,
	}, nil
}

func (s *Synthesizer) synthesizePart(ctx context.Context, part, language string, slow bool, w io.Writer) error {
	u, _ := url.JoinPath(s.url, "/_/TranslateWebserverUi/data/batchexecute")

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(requestBody(part, language, slow)))

	if err != nil {
		return err
	}

	r.Header.Set("Referer", "http://translate.google.com/")
	r.Header.Set("User-Agent", userAgent)
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := s.client.Do(r)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return convertError(resp, s.tld)
	}

	data, err := readAudio(resp.Body)

	if err != nil {
		return err
	}

	if len(data) == 0 {
		return &Error{
			StatusCode: resp.StatusCode,
			Cause:      fmt.Sprintf("No audio stream in response. Unsupported language '%s'", language),
		}
	}

	_, err = w.Write(data)
	return err
}

// requestBody builds the form encoded batchexecute call. The inner
// parameter list is itself JSON encoded into a string.
func requestBody(part, language string, slow bool) string {
	var speed any

	if slow {
		speed = true
	}

	parameter := marshal([]any{part, language, speed, "null"})
	rpc := marshal([]any{[]any{[]any{rpcID, parameter, nil, "generic"}}})

	return "f.req=" + url.QueryEscape(rpc) + "&"
}

func readAudio(r io.Reader) ([]byte, error) {
	var result []byte

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if !strings.Contains(line, rpcID) {
			continue
		}

		match := audioPattern.FindStringSubmatch(line)

		if len(match) < 2 {
			continue
		}

		data, err := base64.StdEncoding.DecodeString(match[1])

		if err != nil {
			return nil, errors.Join(errors.New("invalid audio payload"), err)
		}

		result = append(result, data...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func marshal(v any) string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.Encode(v)

	return strings.TrimSpace(buf.String())
}
