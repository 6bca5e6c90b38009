package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates content static
var assets embed.FS

type Handler struct {
	index *template.Template
	faq   template.HTML

	static http.Handler
}

func New() (*Handler, error) {
	index, err := template.ParseFS(assets, "templates/index.html")

	if err != nil {
		return nil, err
	}

	faq, err := renderMarkdown("content/faq.md")

	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(assets, "static")

	if err != nil {
		return nil, err
	}

	h := &Handler{
		index: index,
		faq:   faq,

		static: http.FileServerFS(static),
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Handle("/static/*", http.StripPrefix("/static/", h.static))
}

func renderMarkdown(name string) (template.HTML, error) {
	data, err := assets.ReadFile(name)

	if err != nil {
		return "", err
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	var buf bytes.Buffer

	if err := md.Convert(data, &buf); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil
}

type indexData struct {
	Title string
	Year  int

	FAQ template.HTML
}
