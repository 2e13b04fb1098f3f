// Package ui holds the terminal styling used by the tfview CLI.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/opsviewer/tfview/internal/config"
)

var (
	// Colors
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)
)

// ColorEnabled resolves a color mode against the given output file.
// "auto" enables styling only when the file is a terminal.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

// RenderHeader renders a section header above a formatted output block.
func RenderHeader(title string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", 40)))
	return b.String()
}

// RenderSection renders a secondary heading.
func RenderSection(title string) string {
	return sectionStyle.Render(title)
}

// RenderErrorLine renders an extracted error message.
func RenderErrorLine(msg string) string {
	return errorStyle.Render(msg)
}
