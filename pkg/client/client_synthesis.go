package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
)

type SynthesisService struct {
	Options []RequestOption
}

func NewSynthesisService(opts ...RequestOption) SynthesisService {
	return SynthesisService{
		Options: opts,
	}
}

type Synthesis struct {
	Content     []byte
	ContentType string

	// Filename is set when the server offers the audio as an attachment.
	Filename string
}

// Convert returns audio meant for inline playback.
func (r *SynthesisService) Convert(ctx context.Context, text string, opts ...RequestOption) (*Synthesis, error) {
	return r.post(ctx, "/convert", text, opts...)
}

// Save returns audio offered as a download.
func (r *SynthesisService) Save(ctx context.Context, text string, opts ...RequestOption) (*Synthesis, error) {
	return r.post(ctx, "/save-audio", text, opts...)
}

func (r *SynthesisService) post(ctx context.Context, path, text string, opts ...RequestOption) (*Synthesis, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	type bodyType struct {
		Text string `json:"text"`
	}

	body, err := json.Marshal(bodyType{
		Text: text,
	})

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+path, bytes.NewReader(body))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readError(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	result := &Synthesis{
		Content:     data,
		ContentType: resp.Header.Get("Content-Type"),
	}

	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		result.Filename = params["filename"]
	}

	return result, nil
}
