package hooks

import (
	"strings"
	"time"

	"github.com/bivory/roz/internal/config"
	"github.com/bivory/roz/internal/logging"
	"github.com/bivory/roz/internal/state"
	"github.com/bivory/roz/internal/store"
)

// reviewOptInMarker is the leading marker that opts a prompt into review.
const reviewOptInMarker = "#roz"

// HandleUserPrompt always records the prompt timestamp, and on the #roz
// opt-in marker enables review, stores the prompt, and resets the decision
// back to Pending for a fresh review cycle. Always approves.
func HandleUserPrompt(input *Input, st store.Store, cfg *config.Config, log *logging.Logger) Output {
	existing, err := st.Get(input.SessionID)
	if err != nil {
		log.FailOpen("load session on user-prompt", err)
		return Approve()
	}

	s := existing
	if s == nil {
		s = state.NewSession(input.SessionID)
	}

	now := time.Now().UTC()
	s.Review.LastPromptAt = &now

	prompt := input.PromptOrEmpty()
	if strings.HasPrefix(strings.TrimLeft(prompt, " \t\n\r"), reviewOptInMarker) {
		s.Review.Enabled = true
		s.Review.UserPrompts = append(s.Review.UserPrompts, prompt)
		s.Review.Decision = state.Decision{Type: state.DecisionPending}
		s.AppendEvent(state.EventPromptReceived, map[string]any{"prompt": prompt})
	}

	s.UpdatedAt = now
	s.Compact(cfg.Trace.MaxEvents)
	if err := st.Put(s); err != nil {
		log.FailOpen("persist session on user-prompt", err)
	}

	return Approve()
}
