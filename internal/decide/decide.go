// Package decide implements the `roz decide` operation: posting a terminal
// COMPLETE or ISSUES decision for a session, grounded on
// original_source/src/cli/decide.rs.
package decide

import (
	"strings"
	"time"

	"github.com/bivory/roz/internal/rozerr"
	"github.com/bivory/roz/internal/state"
	"github.com/bivory/roz/internal/store"
)

// Request is the input to Run.
type Request struct {
	SessionID string
	Decision  string // "COMPLETE" or "ISSUES", case-insensitive
	Summary   string
	Message   string // optional, ISSUES only
	Opinions  string // optional, COMPLETE only
	MaxEvents int    // trace compaction budget; see state.Session.Compact
}

// Run posts a decision for a session: it preserves the prior decision in
// decision_history, records a roz_decision trace event, marks the gate
// approval timestamp on COMPLETE, and resolves the most recent pending
// review attempt's outcome. Returns the updated session.
func Run(st store.Store, req Request) (*state.Session, error) {
	s, err := st.Get(req.SessionID)
	if err != nil {
		return nil, rozerr.Storage(err, "load session %s", req.SessionID)
	}
	if s == nil {
		return nil, rozerr.SessionNotFound(req.SessionID)
	}

	now := time.Now().UTC()
	decisionUpper := strings.ToUpper(req.Decision)

	var newDecision state.Decision
	switch decisionUpper {
	case "COMPLETE":
		newDecision = state.Decision{Type: state.DecisionComplete, Summary: req.Summary}
		if req.Opinions != "" {
			opinions := req.Opinions
			newDecision.SecondOpinions = &opinions
		}
	case "ISSUES":
		newDecision = state.Decision{Type: state.DecisionIssues, Summary: req.Summary}
		if req.Message != "" {
			message := req.Message
			newDecision.MessageToAgent = &message
		}
	default:
		return nil, rozerr.InvalidDecision("unknown decision type: %s", req.Decision)
	}

	// Preserve history before overwriting.
	s.Review.DecisionHistory = append(s.Review.DecisionHistory, state.DecisionRecord{
		Decision:  s.Review.Decision,
		Timestamp: now,
	})

	payload := map[string]any{
		"decision": decisionUpper,
		"summary":  req.Summary,
	}
	if req.Opinions != "" {
		payload["second_opinions"] = req.Opinions
	}
	s.AppendEvent(state.EventRozDecision, payload)

	if decisionUpper == "COMPLETE" {
		s.Review.GateApprovedAt = &now
	}

	if idx := s.Review.LastPendingAttemptIndex(); idx != -1 {
		s.Review.Attempts[idx].Outcome = state.AttemptOutcome{
			Type:         state.OutcomeSuccess,
			DecisionType: strings.ToLower(decisionUpper),
			BlocksNeeded: s.Review.BlockCount,
		}
	}

	s.Review.Decision = newDecision
	s.UpdatedAt = now

	s.Compact(req.MaxEvents)
	if err := st.Put(s); err != nil {
		return nil, rozerr.Storage(err, "persist session %s", req.SessionID)
	}
	return s, nil
}
