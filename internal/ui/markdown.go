package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const minMarkdownWidth = 20

// Built-in panel copy. A file under <assets>/copy/<panel>.md replaces it.
const (
	welcomeCopy = `# TRANSIT

*"In Transit, Momentum Matters"*`

	mapCopy = `## Server & Map

Join our **Discord** server, then drop into the map.`
)

// renderMarkdown renders md through glamour at width. On renderer failure
// the raw text is returned; copy must always show.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width < minMarkdownWidth {
		width = minMarkdownWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
