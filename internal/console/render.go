package console

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// DocumentRenderer returns the display transform for full-document views.
// On a terminal it renders through glamour at the terminal width; otherwise
// text passes through untouched so piped output stays clean.
func DocumentRenderer() func(string) string {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return func(s string) string { return s }
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return func(s string) string { return s }
	}

	return func(s string) string {
		out, err := renderer.Render(s)
		if err != nil {
			return s
		}
		return out
	}
}
