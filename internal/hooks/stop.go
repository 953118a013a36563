package hooks

import (
	"strings"
	"time"

	"github.com/bivory/roz/internal/circuitbreaker"
	"github.com/bivory/roz/internal/config"
	"github.com/bivory/roz/internal/logging"
	"github.com/bivory/roz/internal/state"
	"github.com/bivory/roz/internal/store"
	"github.com/bivory/roz/internal/template"
)

const defaultIssuesMessage = "Issues were found. Please address them and try again."

// HandleStop is the main blocking loop: it approves when review isn't
// enabled or the decision is Complete, and blocks (incrementing block_count,
// re-checking the circuit breaker, and recording a review attempt) when the
// decision is Pending or Issues. The breaker is checked both before and
// after incrementing block_count to avoid an off-by-one while still
// attributing the final block to the session.
func HandleStop(input *Input, st store.Store, cfg *config.Config, log *logging.Logger) Output {
	s, err := st.Get(input.SessionID)
	if err != nil {
		log.FailOpen("load session on stop", err)
		return Approve()
	}
	if s == nil {
		return Approve()
	}

	now := time.Now().UTC()
	s.AppendEvent(state.EventStopHookCalled, map[string]any{})

	if !s.Review.Enabled {
		s.UpdatedAt = now
		persist(st, s, cfg.Trace.MaxEvents, log)
		return Approve()
	}

	cbCfg := circuitbreaker.Config{MaxBlocks: cfg.CircuitBreaker.MaxBlocks}
	if circuitbreaker.ShouldTrip(&s.Review, cbCfg) {
		circuitbreaker.Trip(&s.Review, log)
		s.UpdatedAt = now
		persist(st, s, cfg.Trace.MaxEvents, log)
		return Approve()
	}

	var out Output
	switch s.Review.Decision.Type {
	case state.DecisionComplete:
		out = Approve()

	case state.DecisionIssues:
		msg := defaultIssuesMessage
		if s.Review.Decision.MessageToAgent != nil {
			msg = *s.Review.Decision.MessageToAgent
		}

		s.Review.BlockCount++
		if circuitbreaker.ShouldTrip(&s.Review, cbCfg) {
			circuitbreaker.Trip(&s.Review, log)
			s.UpdatedAt = now
			persist(st, s, cfg.Trace.MaxEvents, log)
			return Approve()
		}

		templateID := template.Select(cfg.Templates)
		recordReviewAttempt(s, templateID)

		out = Block("Review found issues that need to be addressed:\n\n" + msg +
			"\n\nAfter fixing, spawn roz:roz again to re-review.")

	default: // Pending (or unset)
		s.Review.BlockCount++
		if circuitbreaker.ShouldTrip(&s.Review, cbCfg) {
			circuitbreaker.Trip(&s.Review, log)
			s.UpdatedAt = now
			persist(st, s, cfg.Trace.MaxEvents, log)
			return Approve()
		}

		templateID := template.Select(cfg.Templates)
		recordReviewAttempt(s, templateID)

		tpl := template.Load(templateID, cfg.Storage.Path)
		message := strings.ReplaceAll(tpl, "{{session_id}}", input.SessionID)
		out = Block(message)
	}

	s.UpdatedAt = now
	persist(st, s, cfg.Trace.MaxEvents, log)
	return out
}

// recordReviewAttempt appends a new Pending attempt for the given template.
func recordReviewAttempt(s *state.Session, templateID string) {
	s.Review.Attempts = append(s.Review.Attempts, state.ReviewAttempt{
		TemplateID: templateID,
		Timestamp:  time.Now().UTC(),
		Outcome:    state.AttemptOutcome{Type: state.OutcomePending},
	})
}

func persist(st store.Store, s *state.Session, maxEvents int, log *logging.Logger) {
	s.Compact(maxEvents)
	if err := st.Put(s); err != nil {
		log.FailOpen("persist session", err)
	}
}
