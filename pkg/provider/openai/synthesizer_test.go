package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/adrianliechti/text2speech/pkg/provider"
	"github.com/adrianliechti/text2speech/pkg/provider/openai"

	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	var received map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/audio/speech", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3-audio"))
	}))

	defer server.Close()

	s, err := openai.NewSynthesizer(server.URL+"/v1", "", openai.WithToken("test-key"))
	require.NoError(t, err)

	speed := float32(1.5)

	result, err := s.Synthesize(context.Background(), "hello", &provider.SynthesizeOptions{
		Language: "en",
		Speed:    &speed,
	})

	require.NoError(t, err)
	require.Equal(t, []byte("ID3-audio"), result.Content)
	require.Equal(t, "audio/mpeg", result.ContentType)
	require.Equal(t, "tts-1", result.Model)

	require.Equal(t, "hello", received["input"])
	require.Equal(t, "tts-1", received["model"])
	require.Equal(t, "alloy", received["voice"])
	require.Equal(t, "mp3", received["response_format"])
	require.Equal(t, 1.5, received["speed"])
}

func TestSynthesizeErrorNoRetry(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
	}))

	defer server.Close()

	s, err := openai.NewSynthesizer(server.URL, "tts-1", openai.WithVoice("nova"))
	require.NoError(t, err)

	_, err = s.Synthesize(context.Background(), "hello", nil)

	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
	require.Equal(t, int32(1), calls.Load())
}

func TestSynthesizeUnsupportedFormat(t *testing.T) {
	s, err := openai.NewSynthesizer("http://localhost:0", "tts-1")
	require.NoError(t, err)

	_, err = s.Synthesize(context.Background(), "hello", &provider.SynthesizeOptions{Format: "flac"})
	require.ErrorIs(t, err, openai.ErrUnsupportedFormat)
}

func TestSynthesizeEmptyInput(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	t.Cleanup(server.Close)

	s, err := openai.NewSynthesizer(server.URL, "tts-1")
	require.NoError(t, err)

	_, err = s.Synthesize(context.Background(), "   ", nil)
	require.ErrorIs(t, err, provider.ErrEmptyInput)
	require.Zero(t, calls.Load())
}
