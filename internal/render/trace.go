package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bivory/roz/internal/state"
)

// Trace renders a session's forensic trace: a one-line header, then one
// line per event ("[idx] HH:MM:SS EventType"), optionally followed by the
// event's indented JSON payload when verbose is set.
func Trace(s *state.Session, verbose bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Session: %s\n", s.SessionID)
	fmt.Fprintf(&b, "Created: %s\n", s.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"))
	fmt.Fprintf(&b, "Events: %d\n\n", len(s.Trace))

	if len(s.Trace) == 0 {
		b.WriteString("(no trace events)\n")
		return b.String()
	}

	for i, event := range s.Trace {
		label := eventTypeStyle(event.EventType)
		fmt.Fprintf(&b, "%s %s %s\n", seqStyle.Render(fmt.Sprintf("[%d]", i+1)),
			timeStyle.Render(event.Timestamp.Format("15:04:05")), label)

		if verbose {
			payload, err := json.MarshalIndent(event.Payload, "      ", "  ")
			if err != nil {
				continue
			}
			for _, line := range strings.Split("      "+string(payload), "\n") {
				fmt.Fprintf(&b, "%s\n", blockHeaderStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func eventTypeStyle(t state.EventType) string {
	switch t {
	case state.EventGateBlocked, state.EventGateAllowed:
		return gateStyle.Render(string(t))
	case state.EventRozDecision:
		return titleStyle.Render(string(t))
	case state.EventTraceCompacted:
		return warnStyle.Render(string(t))
	default:
		return valueStyle.Render(string(t))
	}
}
