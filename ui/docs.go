package ui

import (
	_ "embed"
	"net/http"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed docs.md
var docsMarkdown []byte

// handleDocs serves the API documentation page rendered from the
// embedded markdown.
func (a *App) handleDocs(w http.ResponseWriter, r *http.Request) {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	body := markdown.ToHTML(docsMarkdown, p, renderer)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<!DOCTYPE html><html><head><title>ESG Chat API</title></head><body>"))
	_, _ = w.Write(body)
	_, _ = w.Write([]byte("</body></html>"))
}
