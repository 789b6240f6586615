package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWrap = 80

// NewMarkdownRenderer returns a glamour renderer for style ("auto", "dark",
// "light", "notty" or a JSON style path).
func NewMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = defaultWrap
	}
	style = strings.TrimSpace(style)
	if style == "" || style == "auto" {
		return glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
	}
	return glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
}
