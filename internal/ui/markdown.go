// ABOUTME: Markdown rendering using glamour for README previews
// ABOUTME: Falls back to raw content when not on a terminal or rendering fails
package ui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/term"
	xterm "golang.org/x/term"
)

// RenderMarkdown renders markdown content for terminal display.
// When raw is true, returns content unchanged (for piping).
// Falls back to raw content on rendering errors.
func RenderMarkdown(content string, raw bool) string {
	if raw {
		return content
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth()),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return xterm.IsTerminal(int(os.Stdout.Fd()))
}

func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
