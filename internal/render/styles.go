// Package render provides lipgloss-based terminal rendering for roz's
// inspection subcommands: list, trace, stats, debug, context.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Gray - timestamps, metadata

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Gray - labels

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")) // White - values

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")) // White bold - headers

	// Decision outcomes
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // Green - complete

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")) // Red - issues / tripped breaker

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // Yellow - pending

	// Trace event kinds
	gateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange - gate_blocked/gate_allowed

	seqStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(5).
			Align(lipgloss.Right)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	blockHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Italic(true)
)

func divider(width int) string {
	return dimStyle.Render(strings.Repeat("─", width))
}

// decisionLabel renders a decision type with its outcome color.
func decisionLabel(decisionType, summary string) string {
	switch decisionType {
	case "complete":
		if summary != "" {
			return successStyle.Render("Complete - " + summary)
		}
		return successStyle.Render("Complete")
	case "issues":
		if summary != "" {
			return errorStyle.Render("Issues - " + summary)
		}
		return errorStyle.Render("Issues")
	default:
		return warnStyle.Render("Pending")
	}
}
