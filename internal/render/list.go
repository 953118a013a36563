package render

import (
	"fmt"
	"strings"

	"github.com/bivory/roz/internal/store"
)

const promptPreviewLen = 50

// List renders the `roz list` table: session id, local creation time, and a
// single-line preview of the first #roz-triggering prompt.
func List(sessions []store.SessionSummary, rozHome string) string {
	var b strings.Builder

	if len(sessions) == 0 {
		b.WriteString("No sessions found.\n")
		fmt.Fprintf(&b, "\nSessions are stored in: %s\n", rozHome)
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("%-38s %-20s First Prompt", "Session ID", "Created")))
	fmt.Fprintf(&b, "%s\n", divider(90))

	for _, s := range sessions {
		created := s.CreatedAt.Local().Format("2006-01-02 15:04")
		prompt := formatPromptPreview(s.FirstPrompt)
		fmt.Fprintf(&b, "%-38s %s %s\n", s.SessionID, dimStyle.Render(fmt.Sprintf("%-20s", created)), prompt)
	}

	fmt.Fprintf(&b, "%s\n", divider(90))
	fmt.Fprintf(&b, "Showing %d session(s)\n", len(sessions))
	return b.String()
}

func formatPromptPreview(prompt string) string {
	if prompt == "" {
		return dimStyle.Render("(no prompt)")
	}
	firstLine := prompt
	if idx := strings.IndexByte(prompt, '\n'); idx != -1 {
		firstLine = prompt[:idx]
	}
	if len(firstLine) > promptPreviewLen {
		return valueStyle.Render(firstLine[:promptPreviewLen] + "...")
	}
	return valueStyle.Render(firstLine)
}
