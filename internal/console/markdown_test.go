// ABOUTME: Tests for plan note markdown rendering
// ABOUTME: Notes may carry emphasis and lists from the LLM

package console

import (
	"strings"
	"testing"
)

func TestRenderNote(t *testing.T) {
	out := string(renderNote("Drink **plenty** of water"))
	if !strings.Contains(out, "<strong>plenty</strong>") {
		t.Errorf("bold not rendered: %q", out)
	}

	// Raw HTML must not pass through.
	out = string(renderNote(`<script>alert(1)</script>`))
	if strings.Contains(out, "<script>") {
		t.Errorf("raw html leaked: %q", out)
	}
}

func TestRenderNotes(t *testing.T) {
	if renderNotes(nil) != nil {
		t.Error("expected nil for empty input")
	}

	out := renderNotes([]string{"one", "two"})
	if len(out) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(out))
	}
}
