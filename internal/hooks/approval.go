package hooks

import (
	"time"

	"github.com/bivory/roz/internal/config"
	"github.com/bivory/roz/internal/state"
)

// isApproved reports whether the session's existing approval still covers a
// new gated tool invocation, per the configured approval scope.
//
// Precondition: the decision must be Complete and gate_approved_at must be
// set — callers check this before calling isApproved.
func isApproved(r *state.Review, gates config.GatesConfig, now time.Time) bool {
	approvedAt := *r.GateApprovedAt

	if gates.ApprovalTTLSec > 0 {
		expiry := approvedAt.Add(time.Duration(gates.ApprovalTTLSec) * time.Second)
		if now.After(expiry) {
			return false
		}
	}

	switch gates.ApprovalScope {
	case config.ApprovalScopeTool:
		return false

	case config.ApprovalScopePrompt:
		// effective_prompt_at collapses to last_prompt_at whether or not a
		// new prompt arrived mid-review (max(last_prompt_at,
		// review_started_at) when last_prompt_at > review_started_at is
		// just last_prompt_at again) — a deliberately preserved quirk: a
		// prompt that lands after review finishes but before the gate is
		// re-challenged still resets the approval window.
		if r.LastPromptAt == nil {
			return true
		}
		return approvedAt.After(*r.LastPromptAt)

	default: // Session
		return true
	}
}
