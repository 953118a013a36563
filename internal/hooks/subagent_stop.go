package hooks

import (
	"fmt"
	"regexp"
	"time"

	"github.com/bivory/roz/internal/logging"
	"github.com/bivory/roz/internal/state"
	"github.com/bivory/roz/internal/store"
)

// sessionIDPattern extracts a SESSION_ID=<id> or SESSION_ID: <id> token from
// a reviewer subagent's prompt.
var sessionIDPattern = regexp.MustCompile(`SESSION_ID[=:]\s*([A-Za-z0-9_-]+)`)

// HandleSubagentStop is the temporal-proof check: it verifies that any
// Complete/Issues decision on the referenced session was recorded during
// the reviewer subagent's own execution window, preventing the main agent
// from bypassing review by posting a decision directly.
func HandleSubagentStop(input *Input, st store.Store, log *logging.Logger) Output {
	if input.SubagentType == nil || *input.SubagentType != "roz:roz" {
		return Approve()
	}

	var prompt string
	if input.SubagentPrompt != nil {
		prompt = *input.SubagentPrompt
	}
	match := sessionIDPattern.FindStringSubmatch(prompt)
	if match == nil {
		return Block("roz:roz completed but SESSION_ID not found in prompt. " +
			"The prompt must include SESSION_ID=<id>.")
	}
	sessionID := match[1]

	started := time.Now().UTC().Add(-1 * time.Hour)
	if input.SubagentStartedAt != nil {
		started = input.SubagentStartedAt.UTC()
	}
	ended := time.Now().UTC()
	const clockSkewBuffer = 5 * time.Second

	s, err := st.Get(sessionID)
	if err != nil {
		log.FailOpen("load session on subagent-stop", err)
		return Approve()
	}
	if s == nil {
		log.Warn("subagent-stop: session not found", map[string]any{"session_id": sessionID})
		return Approve()
	}

	switch s.Review.Decision.Type {
	case state.DecisionComplete, state.DecisionIssues:
		decisionTime := s.UpdatedAt
		if decisionTime.Before(started) {
			return Block(fmt.Sprintf(
				"Decision timestamp (%s) is before roz started (%s). "+
					"Decision must be posted by roz:roz during its execution.",
				decisionTime.Format(time.RFC3339), started.Format(time.RFC3339)))
		}
		if decisionTime.After(ended.Add(clockSkewBuffer)) {
			return Block(fmt.Sprintf(
				"Decision timestamp (%s) is after roz ended (%s). "+
					"Decision must be posted by roz:roz during its execution.",
				decisionTime.Format(time.RFC3339), ended.Format(time.RFC3339)))
		}
		return Approve()

	default: // Pending
		return Block(fmt.Sprintf(
			"roz:roz (%s) completed but did not record a decision.\n\n"+
				"Run: roz decide %s COMPLETE \"summary\"\n"+
				" or: roz decide %s ISSUES \"summary\" --message \"what to fix\"",
			*input.SubagentType, sessionID, sessionID))
	}
}
