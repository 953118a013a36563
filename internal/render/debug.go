package render

import (
	"encoding/json"

	"github.com/bivory/roz/internal/state"
)

// Debug renders the full session record as indented JSON, for when a plain
// trace or context summary isn't enough.
func Debug(s *state.Session) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
