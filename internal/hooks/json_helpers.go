package hooks

import "encoding/json"

func jsonUnmarshalLenient(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// extractBashCommand pulls the "command" string field out of a Bash tool's
// raw tool_input JSON object, returning "" if it's absent or malformed.
func extractBashCommand(toolInput []byte) string {
	if len(toolInput) == 0 {
		return ""
	}
	var parsed struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal(toolInput, &parsed); err != nil {
		return ""
	}
	return parsed.Command
}
