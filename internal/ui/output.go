// ABOUTME: Inline status helpers for progress lines, tables and fatal errors
// ABOUTME: Multi-line errors keep their layout with the detail lines muted
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type level int

const (
	levelSuccess level = iota
	levelError
	levelWarning
	levelInfo
	levelMuted
)

var levelStyles = map[level]lipgloss.Style{
	levelSuccess: lipgloss.NewStyle().Foreground(ColorSuccess),
	levelError:   lipgloss.NewStyle().Foreground(ColorError),
	levelWarning: lipgloss.NewStyle().Foreground(ColorWarning),
	levelInfo:    lipgloss.NewStyle().Foreground(ColorInfo),
	levelMuted:   lipgloss.NewStyle().Foreground(ColorMuted),
}

// styled renders line by line so lipgloss does not pad lines to a common width.
func styled(l level, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = levelStyles[l].Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// FormatError renders a fatal error for stderr. The first line of the error
// carries the symbol; any further lines (a manifest error's path, cause and
// hint) follow unchanged apart from color.
func FormatError(err error) string {
	head, detail, multiline := strings.Cut(err.Error(), "\n")
	out := styled(levelError, SymbolError+" Error: "+head)
	if multiline {
		out += "\n" + styled(levelMuted, detail)
	}
	return out
}

// Success styles a created or updated line.
func Success(s string) string { return styled(levelSuccess, s) }

// Error styles a failed plugin line.
func Error(s string) string { return styled(levelError, s) }

// Warning styles a missing directory line.
func Warning(s string) string { return styled(levelWarning, s) }

// Info styles neutral status lines.
func Info(s string) string { return styled(levelInfo, s) }

// Muted styles hints and secondary text.
func Muted(s string) string { return styled(levelMuted, s) }

var boldStyle = lipgloss.NewStyle().Bold(true)

// Bold styles table headers.
func Bold(s string) string { return boldStyle.Render(s) }
