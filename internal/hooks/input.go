// Package hooks implements the hook dispatcher and the five hook handlers:
// session-start, user-prompt, stop, subagent-stop, and pre-tool-use.
package hooks

import (
	"encoding/json"
	"time"

	"github.com/bivory/roz/internal/rozerr"
)

// Input is the JSON record read from stdin for every hook invocation.
// Unknown fields are ignored by encoding/json automatically; optional
// fields simply stay nil/zero when absent.
type Input struct {
	SessionID          string          `json:"session_id"`
	Cwd                string          `json:"cwd"`
	Prompt             *string         `json:"prompt,omitempty"`
	ToolName           *string         `json:"tool_name,omitempty"`
	ToolInput          json.RawMessage `json:"tool_input,omitempty"`
	ToolResponse       json.RawMessage `json:"tool_response,omitempty"`
	Source             *string         `json:"source,omitempty"`
	SubagentType       *string         `json:"subagent_type,omitempty"`
	SubagentPrompt     *string         `json:"subagent_prompt,omitempty"`
	SubagentStartedAt  *time.Time      `json:"subagent_started_at,omitempty"`
}

// PromptOrEmpty returns the prompt text, or "" if absent.
func (in *Input) PromptOrEmpty() string {
	if in.Prompt == nil {
		return ""
	}
	return *in.Prompt
}

// ParseInput decodes a hook Input from raw JSON and validates that the
// required session_id field is present. A missing session_id is reported as
// a MissingField error so the dispatcher can fail open with a warning.
func ParseInput(data []byte) (*Input, error) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	if in.SessionID == "" {
		return nil, rozerr.MissingField("session_id")
	}
	return &in, nil
}
