package hooks

import (
	"encoding/json"

	"github.com/bivory/roz/internal/config"
	"github.com/bivory/roz/internal/logging"
	"github.com/bivory/roz/internal/store"
)

// Dispatch routes a hook invocation by name to its handler. Unknown hook
// names approve and log a warning. Every handler is fail-open: a storage or
// parse error degrades to that hook's allow verdict rather than propagating.
//
// The returned value is whatever should be marshaled to stdout: Output for
// every hook except pre-tool-use, which returns a PreToolUseOutput.
func Dispatch(hookName string, rawInput []byte, st store.Store, cfg *config.Config, log *logging.Logger) any {
	input, err := ParseInput(rawInput)
	if err != nil {
		log.FailOpen("parse hook input", err)
		if hookName == "pre-tool-use" {
			return PreToolUseAllow()
		}
		return Approve()
	}

	switch hookName {
	case "session-start":
		return HandleSessionStart(input, st, cfg, log)
	case "user-prompt":
		return HandleUserPrompt(input, st, cfg, log)
	case "stop":
		return HandleStop(input, st, cfg, log)
	case "subagent-stop":
		return HandleSubagentStop(input, st, log)
	case "pre-tool-use":
		return HandlePreToolUse(input, st, cfg, log)
	default:
		log.Warn("unknown hook", map[string]any{"hook": hookName})
		return Approve()
	}
}

// MarshalOutput marshals whatever Dispatch returned to its wire JSON form.
func MarshalOutput(v any) ([]byte, error) {
	return json.Marshal(v)
}
