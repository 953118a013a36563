package hooks

import (
	"strings"
	"time"

	"github.com/bivory/roz/internal/config"
	"github.com/bivory/roz/internal/logging"
	"github.com/bivory/roz/internal/state"
	"github.com/bivory/roz/internal/store"
	"github.com/bivory/roz/internal/template"
)

// HandlePreToolUse is the gate: it matches the tool invocation against the
// configured glob patterns, checks whether an existing approval already
// covers it, and otherwise denies and arms review for the session.
func HandlePreToolUse(input *Input, st store.Store, cfg *config.Config, log *logging.Logger) PreToolUseOutput {
	gates := cfg.Review.Gates
	if !gates.IsEnabled() {
		return PreToolUseAllow()
	}

	toolName := ""
	if input.ToolName != nil {
		toolName = *input.ToolName
	}
	key := toolKey(toolName, input.ToolInput)

	_, matched := FirstMatchingPattern(gates.Tools, key)
	if !matched {
		return PreToolUseAllow()
	}

	s, err := st.Get(input.SessionID)
	if err != nil {
		log.FailOpen("load session on pre-tool-use", err)
		return PreToolUseAllow()
	}
	if s == nil {
		s = state.NewSession(input.SessionID)
	}

	now := time.Now().UTC()

	if s.Review.CircuitBreakerTripped {
		s.AppendEvent(state.EventGateAllowed, map[string]any{"reason": "circuit_breaker"})
		s.UpdatedAt = now
		persist(st, s, cfg.Trace.MaxEvents, log)
		return PreToolUseAllow()
	}

	if s.Review.Decision.Type == state.DecisionComplete && s.Review.GateApprovedAt != nil {
		if isApproved(&s.Review, gates, now) {
			s.AppendEvent(state.EventGateAllowed, map[string]any{"reason": "approved"})
			s.UpdatedAt = now
			persist(st, s, cfg.Trace.MaxEvents, log)
			return PreToolUseAllow()
		}
	}

	s.Review.Enabled = true
	s.Review.ReviewStartedAt = &now
	s.Review.GateTrigger = &state.GateTrigger{
		ToolName:       toolName,
		ToolInput:      state.NewTruncatedInput(rawOrNil(input.ToolInput)),
		TriggeredAt:    now,
		PatternMatched: mustMatchedPattern(gates.Tools, key),
	}
	s.AppendEvent(state.EventGateBlocked, map[string]any{
		"tool_name":       toolName,
		"pattern_matched": s.Review.GateTrigger.PatternMatched,
	})
	s.UpdatedAt = now
	persist(st, s, cfg.Trace.MaxEvents, log)

	templateID := template.Select(cfg.Templates)
	tpl := template.Load(templateID, cfg.Storage.Path)
	message := strings.ReplaceAll(tpl, "{{session_id}}", input.SessionID)

	return PreToolUseDeny(message)
}

// toolKey builds the gate matching key: the tool name verbatim, except for
// Bash invocations, where it's "Bash:" plus the normalized command.
func toolKey(toolName string, toolInput []byte) string {
	if toolName != "Bash" {
		return toolName
	}
	command := extractBashCommand(toolInput)
	return "Bash:" + NormalizeBashCommand(command)
}

func mustMatchedPattern(patterns []string, key string) string {
	p, _ := FirstMatchingPattern(patterns, key)
	return p
}

func rawOrNil(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := jsonUnmarshalLenient(raw, &v); err != nil {
		return string(raw)
	}
	return v
}
