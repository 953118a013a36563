package hooks

import (
	"os/exec"

	"github.com/bivory/roz/internal/config"
	"github.com/bivory/roz/internal/logging"
	"github.com/bivory/roz/internal/state"
	"github.com/bivory/roz/internal/store"
)

// HandleSessionStart creates the session if it doesn't exist yet (recording
// a session_start trace event), or resumes an existing one untouched. It
// optionally enriches the approve verdict with additionalContext naming any
// detected local second-opinion reviewer helpers.
func HandleSessionStart(input *Input, st store.Store, cfg *config.Config, log *logging.Logger) Output {
	existing, err := st.Get(input.SessionID)
	if err != nil {
		log.FailOpen("load session on session-start", err)
		return Approve()
	}

	s := existing
	if s == nil {
		s = state.NewSession(input.SessionID)
		source := ""
		if input.Source != nil {
			source = *input.Source
		}
		s.AppendEvent(state.EventSessionStart, map[string]any{
			"source": source,
			"cwd":    input.Cwd,
		})
	}

	s.Compact(cfg.Trace.MaxEvents)
	if err := st.Put(s); err != nil {
		log.FailOpen("persist session on session-start", err)
	}

	if ctx := detectSecondOpinionContext(); ctx != "" {
		return ApproveWithContext(ctx)
	}
	return Approve()
}

// detectSecondOpinionContext probes PATH for known second-opinion reviewer
// CLIs and, if any are present, returns a context string naming them. An
// empty result means the host falls back to its default reviewer (Opus).
func detectSecondOpinionContext() string {
	codex := commandExists("codex")
	gemini := commandExists("gemini")
	if !codex && !gemini {
		return ""
	}

	msg := "roz second opinion sources: "
	if codex {
		msg += "codex "
	}
	if gemini {
		msg += "gemini"
	}
	return msg
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
