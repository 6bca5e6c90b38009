package gtts_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/adrianliechti/text2speech/pkg/provider"
	"github.com/adrianliechti/text2speech/pkg/provider/gtts"

	"github.com/stretchr/testify/require"
)

type call struct {
	Text     string
	Language string
	Slow     bool
}

type fakeTranslate struct {
	mu    sync.Mutex
	calls []call

	status int
	empty  bool
}

func (f *fakeTranslate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/_/TranslateWebserverUi/data/batchexecute" || r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var rpc [][][]any

	if err := json.Unmarshal([]byte(r.PostForm.Get("f.req")), &rpc); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var params []any

	if err := json.Unmarshal([]byte(rpc[0][0][1].(string)), &params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c := call{
		Text:     params[0].(string),
		Language: params[1].(string),
		Slow:     params[2] == true,
	}

	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	if f.status != 0 {
		w.WriteHeader(f.status)
		return
	}

	if f.empty {
		fmt.Fprint(w, ")]}'\n\n25\n[[\"wrb.fr\",\"jQ1olc\",\"[]\",null,null,null,\"generic\"]]\n")
		return
	}

	audio := base64.StdEncoding.EncodeToString([]byte("<" + c.Text + ">"))

	fmt.Fprint(w, ")]}'\n\n123\n")
	fmt.Fprintf(w, "[[\"wrb.fr\",\"jQ1olc\",\"[\\\"%s\\\"]\",null,null,null,\"generic\"],[\"di\",45]]\n", audio)
}

func newSynthesizer(t *testing.T, f *fakeTranslate, options ...gtts.Option) *gtts.Synthesizer {
	server := httptest.NewServer(f)
	t.Cleanup(server.Close)

	s, err := gtts.NewSynthesizer(server.URL, options...)
	require.NoError(t, err)

	return s
}

func TestSynthesize(t *testing.T) {
	f := &fakeTranslate{}
	s := newSynthesizer(t, f)

	result, err := s.Synthesize(context.Background(), "hello", &provider.SynthesizeOptions{
		Language: "en",
		Format:   "mp3",
	})

	require.NoError(t, err)
	require.Equal(t, "<hello>", string(result.Content))
	require.Equal(t, "audio/mpeg", result.ContentType)
	require.NotEmpty(t, result.ID)

	require.Equal(t, []call{{Text: "hello", Language: "en"}}, f.calls)
}

func TestSynthesizeLongText(t *testing.T) {
	f := &fakeTranslate{}
	s := newSynthesizer(t, f)

	input := strings.Repeat("one two three four five six seven eight nine ten ", 6)

	result, err := s.Synthesize(context.Background(), input, nil)
	require.NoError(t, err)

	require.Greater(t, len(f.calls), 1)

	var expected strings.Builder

	for _, c := range f.calls {
		require.LessOrEqual(t, len([]rune(c.Text)), 100)
		expected.WriteString("<" + c.Text + ">")
	}

	require.Equal(t, expected.String(), string(result.Content))
}

func TestSynthesizeSlow(t *testing.T) {
	f := &fakeTranslate{}
	s := newSynthesizer(t, f, gtts.WithSlow(true), gtts.WithLanguage("DE"))

	_, err := s.Synthesize(context.Background(), "hallo", nil)
	require.NoError(t, err)

	require.Equal(t, []call{{Text: "hallo", Language: "de", Slow: true}}, f.calls)
}

func TestSynthesizeNoText(t *testing.T) {
	f := &fakeTranslate{}
	s := newSynthesizer(t, f)

	_, err := s.Synthesize(context.Background(), " ... ", nil)
	require.ErrorIs(t, err, gtts.ErrNoText)
	require.ErrorIs(t, err, provider.ErrEmptyInput)
	require.Empty(t, f.calls)
}

func TestSynthesizeUnsupportedFormat(t *testing.T) {
	s := newSynthesizer(t, &fakeTranslate{})

	_, err := s.Synthesize(context.Background(), "hello", &provider.SynthesizeOptions{Format: "wav"})
	require.ErrorIs(t, err, gtts.ErrUnsupportedFormat)
}

func TestSynthesizeUpstreamError(t *testing.T) {
	tests := []struct {
		status int
		cause  string
	}{
		{http.StatusForbidden, "Bad token or upstream API changes"},
		{http.StatusTooManyRequests, "Too many requests"},
		{http.StatusInternalServerError, "Upstream API error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			s := newSynthesizer(t, &fakeTranslate{status: tt.status})

			_, err := s.Synthesize(context.Background(), "hello", nil)

			var gerr *gtts.Error
			require.ErrorAs(t, err, &gerr)
			require.Equal(t, tt.status, gerr.StatusCode)
			require.Contains(t, err.Error(), tt.cause)
		})
	}
}

func TestSynthesizeNoAudio(t *testing.T) {
	s := newSynthesizer(t, &fakeTranslate{empty: true})

	_, err := s.Synthesize(context.Background(), "hello", nil)
	require.ErrorContains(t, err, "No audio stream in response")
}

func TestNewSynthesizerUnsupportedLanguage(t *testing.T) {
	_, err := gtts.NewSynthesizer("", gtts.WithLanguage("xx"))
	require.ErrorContains(t, err, "unsupported language")
}
