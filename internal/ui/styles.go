// ABOUTME: Palette and status symbols for README run output
// ABOUTME: Lets NO_COLOR, CLICOLOR and CLICOLOR_FORCE override the detected color profile
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette, keyed by the outcome a line reports.
var (
	ColorSuccess = lipgloss.Color("#22c55e") // README created or updated
	ColorError   = lipgloss.Color("#ef4444") // plugin failed
	ColorWarning = lipgloss.Color("#eab308") // plugin directory missing
	ColorInfo    = lipgloss.Color("#06b6d4") // README preserved, informational
	ColorMuted   = lipgloss.Color("#6b7280")
	ColorAccent  = lipgloss.Color("#8b5cf6") // headings
)

var (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
)

func init() {
	if p, ok := envProfile(); ok {
		lipgloss.SetColorProfile(p)
	}
}

// envProfile returns the profile the environment forces, if any. Plain
// text wins over forced color.
func envProfile() (termenv.Profile, bool) {
	switch {
	case termenv.EnvNoColor(), os.Getenv("TERM") == "dumb":
		return termenv.Ascii, true
	case os.Getenv("CLICOLOR_FORCE") != "" && os.Getenv("CLICOLOR_FORCE") != "0":
		// piped output such as CI logs; 256 colors render everywhere
		return termenv.ANSI256, true
	}
	return termenv.Ascii, false
}
