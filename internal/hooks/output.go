package hooks

import "encoding/json"

// Output is the general hook-output shape used by session-start,
// user-prompt, stop, and subagent-stop. Approve serializes to "{}" exactly
// (decision omitted); Block serializes decision+reason.
type Output struct {
	Decision          string `json:"decision,omitempty"`
	Reason            string `json:"reason,omitempty"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// Approve is the bare allow verdict.
func Approve() Output { return Output{} }

// ApproveWithContext is an allow verdict carrying extra context text for the
// host to inject upstream.
func ApproveWithContext(context string) Output {
	return Output{AdditionalContext: context}
}

// Block is the deny verdict carrying a reason message shown to the agent.
func Block(reason string) Output {
	return Output{Decision: "block", Reason: reason}
}

// PermissionDecision is the verdict a pre-tool-use response carries.
type PermissionDecision string

const (
	PermissionAllow PermissionDecision = "allow"
	PermissionDeny  PermissionDecision = "deny"
	PermissionAsk   PermissionDecision = "ask"
)

// PreToolUseOutput wraps the pre-tool-use-specific schema.
type PreToolUseOutput struct {
	HookSpecificOutput PreToolUseDecision `json:"hookSpecificOutput"`
}

type PreToolUseDecision struct {
	HookEventName      string              `json:"hookEventName"`
	PermissionDecision PermissionDecision  `json:"permissionDecision"`
	Reason             string              `json:"reason,omitempty"`
	UpdatedInput       json.RawMessage     `json:"updatedInput,omitempty"`
}

// PreToolUseAllow builds the allow verdict for a pre-tool-use response.
func PreToolUseAllow() PreToolUseOutput {
	return PreToolUseOutput{HookSpecificOutput: PreToolUseDecision{
		HookEventName:      "PreToolUse",
		PermissionDecision: PermissionAllow,
	}}
}

// PreToolUseDeny builds the deny verdict with a reason.
func PreToolUseDeny(reason string) PreToolUseOutput {
	return PreToolUseOutput{HookSpecificOutput: PreToolUseDecision{
		HookEventName:      "PreToolUse",
		PermissionDecision: PermissionDeny,
		Reason:             reason,
	}}
}
