package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for terminal display. Off a terminal, or if
// rendering fails, the source text is returned unchanged.
func RenderMarkdown(md string) string {
	if !IsTTY() {
		return md
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		Debug("markdown renderer unavailable", "error", err)
		return md
	}

	rendered, err := r.Render(md)
	if err != nil {
		Debug("markdown render failed", "error", err)
		return md
	}
	return strings.TrimRight(rendered, "\n") + "\n"
}
