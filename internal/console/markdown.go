// ABOUTME: Markdown rendering for plan notes
// ABOUTME: Notes come from the LLM and may carry light markdown formatting

package console

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var noteMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// renderNote converts a markdown note to HTML. Conversion failures fall back
// to the plain text, escaped by the template engine.
func renderNote(note string) template.HTML {
	var buf bytes.Buffer
	if err := noteMarkdown.Convert([]byte(note), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(note))
	}
	return template.HTML(buf.String())
}

// renderNotes converts a slice of notes for template consumption.
func renderNotes(notes []string) []template.HTML {
	if len(notes) == 0 {
		return nil
	}
	out := make([]template.HTML, 0, len(notes))
	for _, n := range notes {
		out = append(out, renderNote(n))
	}
	return out
}
