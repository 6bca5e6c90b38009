package web

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Title: "Text2Speech",
		Year:  time.Now().Year(),

		FAQ: h.faq,
	}

	var buf bytes.Buffer

	if err := h.index.Execute(&buf, data); err != nil {
		err = &RenderError{Name: "index.html", Err: err}

		slog.ErrorContext(r.Context(), "render failed", "error", err)
		http.Error(w, "Error rendering index.html", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
