// ABOUTME: Rendering functions for headers, sections, details and tables
// ABOUTME: Provides consistent formatting for run summaries and plugin listings
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderWidth is the fixed width for header boxes
const HeaderWidth = 42

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 2).
			Width(HeaderWidth).
			Align(lipgloss.Center)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// RenderHeader returns a styled header box with the given title
func RenderHeader(title string) string {
	return headerStyle.Render(title)
}

// RenderSection returns a styled section header with optional count.
// Pass -1 for count to omit it.
func RenderSection(title string, count int) string {
	if count >= 0 {
		return sectionStyle.Render(fmt.Sprintf("%s (%d)", title, count))
	}
	return sectionStyle.Render(title)
}

// RenderDetail returns a label: value pair
func RenderDetail(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// Indent prefixes s with two spaces per level
func Indent(s string, level int) string {
	return strings.Repeat("  ", level) + s
}

// Column is one column of a plain table.
type Column struct {
	Title string
	Width int // minimum width; grows to fit the widest cell
}

// RenderTable lays out rows under a bold header and a muted rule. Cells are
// padded before styling so ANSI codes do not break alignment.
func RenderTable(columns []Column, rows [][]string) string {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = max(col.Width, lipgloss.Width(col.Title))
		for _, row := range rows {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}

	pad := func(cells []string) string {
		parts := make([]string, len(columns))
		for i := range columns {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	titles := make([]string, len(columns))
	total := 2 * (len(columns) - 1)
	for i, col := range columns {
		titles[i] = col.Title
		total += widths[i]
	}

	var b strings.Builder
	b.WriteString(Bold(pad(titles)) + "\n")
	b.WriteString(Muted(strings.Repeat("─", total)) + "\n")
	for _, row := range rows {
		b.WriteString(pad(row) + "\n")
	}
	return b.String()
}
