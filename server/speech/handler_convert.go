package speech

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/adrianliechti/text2speech/pkg/provider"
)

const downloadName = "output.mp3"

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	synthesis, err := h.synthesize(r)

	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAudio(w, synthesis)
}

func (h *Handler) handleSaveAudio(w http.ResponseWriter, r *http.Request) {
	synthesis, err := h.synthesize(r)

	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": downloadName,
	}))

	writeAudio(w, synthesis)
}

func (h *Handler) synthesize(r *http.Request) (*provider.Synthesis, error) {
	text, err := readText(r)

	if err != nil {
		return nil, err
	}

	synthesizer, err := h.Synthesizer("")

	if err != nil {
		return nil, err
	}

	options := &provider.SynthesizeOptions{
		Language: h.Language,
		Format:   provider.FormatMP3,
	}

	synthesis, err := synthesizer.Synthesize(r.Context(), text, options)

	if err != nil {
		return nil, &SynthesisError{Err: err}
	}

	return synthesis, nil
}

// readText treats an absent, malformed or blank body as missing text.
func readText(r *http.Request) (string, error) {
	var req ConvertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", errNoText
	}

	text := strings.TrimSpace(req.Text)

	if text == "" {
		return "", errNoText
	}

	return text, nil
}

func writeAudio(w http.ResponseWriter, synthesis *provider.Synthesis) {
	contentType := synthesis.ContentType

	if contentType == "" {
		contentType = provider.ContentTypeMP3
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(synthesis.Content)))

	w.WriteHeader(http.StatusOK)
	w.Write(synthesis.Content)
}
