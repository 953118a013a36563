package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bivory/roz/internal/state"
)

// Context renders the review context a human reviewer needs: the decision
// state, block count, and (if one fired) the gate trigger that started the
// review, with its captured tool input pretty-printed.
func Context(s *state.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Session: %s\n", s.SessionID)
	fmt.Fprintf(&b, "Created: %s\n", s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"))
	fmt.Fprintf(&b, "Updated: %s\n\n", s.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"))

	fmt.Fprintf(&b, "%s %v\n", labelStyle.Render("Review enabled:"), s.Review.Enabled)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Decision:"), decisionLabel(string(s.Review.Decision.Type), s.Review.Decision.Summary))
	fmt.Fprintf(&b, "%s %d\n\n", labelStyle.Render("Block count:"), s.Review.BlockCount)

	if s.Review.GateTrigger == nil {
		return b.String()
	}

	trigger := s.Review.GateTrigger
	b.WriteString("Gate trigger:\n")
	fmt.Fprintf(&b, "  Tool: %s\n", trigger.ToolName)
	fmt.Fprintf(&b, "  Pattern: %s\n", trigger.PatternMatched)
	fmt.Fprintf(&b, "  Time: %s\n", trigger.TriggeredAt.UTC().Format("2006-01-02T15:04:05Z"))
	b.WriteString("  Input:\n")

	var v any
	inputJSON := []byte("null")
	if err := json.Unmarshal(trigger.ToolInput.Value, &v); err == nil {
		if pretty, err := json.MarshalIndent(v, "    ", "  "); err == nil {
			inputJSON = pretty
		}
	}
	for _, line := range strings.Split("    "+string(inputJSON), "\n") {
		fmt.Fprintf(&b, "%s\n", line)
	}
	if trigger.ToolInput.Truncated && trigger.ToolInput.OriginalSize != nil {
		fmt.Fprintf(&b, "    (truncated, original size: %d bytes)\n", *trigger.ToolInput.OriginalSize)
	}

	return b.String()
}
