package speech

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/text2speech/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/convert", h.handleConvert)
	r.Post("/save-audio", h.handleSaveAudio)
}

func writeJson(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError

	var verr *ValidationError

	if errors.As(err, &verr) {
		code = http.StatusBadRequest
	}

	slog.ErrorContext(r.Context(), "speech request failed", "path", r.URL.Path, "status", code, "error", err)

	writeJson(w, code, ErrorResponse{
		Error: err.Error(),
	})
}
