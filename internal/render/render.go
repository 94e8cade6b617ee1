// ABOUTME: Markdown rendering for product descriptions on detail pages
// ABOUTME: Falls back to escaped plain text when conversion fails

package render

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/yuin/goldmark"
)

// Description converts a product description from markdown to HTML for the
// detail-page collaborator. Conversion failures degrade to the escaped
// plain text instead of an error.
func Description(markdown string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		slog.Default().Warn("markdown conversion failed", "error", err)
		return template.HTML(template.HTMLEscapeString(markdown))
	}
	return template.HTML(buf.String())
}
