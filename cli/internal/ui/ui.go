// Package ui provides terminal output helpers for the CLI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D9FF")).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// Header prints the command header.
func Header(title, subtitle string) {
	fmt.Println(titleStyle.Render(title))
	if subtitle != "" {
		fmt.Println(subtitleStyle.Render(subtitle))
	}
	fmt.Println()
}

// Success prints a success line.
func Success(format string, args ...interface{}) {
	color.Green("✓ "+format, args...)
}

// Error prints an error line.
func Error(format string, args ...interface{}) {
	color.Red("✗ "+format, args...)
}

// Info prints an informational line.
func Info(format string, args ...interface{}) {
	color.Cyan(format, args...)
}

// Summary renders a two-column summary table.
func Summary(rows [][]string) {
	data := append(pterm.TableData{}, rows...)
	_ = pterm.DefaultTable.WithData(data).Render()
}
