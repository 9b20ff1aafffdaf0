// ABOUTME: Package documentation for the ui package
// ABOUTME: Describes the purpose and usage patterns for terminal styling

// Package ui provides consistent terminal styling for plugin-readmes using
// lipgloss.
//
// Usage:
//   - Inline helpers compose output for any writer: fmt.Fprintln(w, ui.Success(ui.SymbolSuccess+" Done"))
//   - RenderHeader, RenderDetail and RenderTable lay out summaries and listings
//   - RenderMarkdown previews generated READMEs with glamour
//   - NO_COLOR and TERM=dumb disable colors
package ui
