// Package circuitbreaker implements the blocking-loop safety valve: once a
// session has been blocked too many times without a decision, review is
// disabled for the rest of the session rather than blocking forever.
package circuitbreaker

import (
	"github.com/bivory/roz/internal/logging"
	"github.com/bivory/roz/internal/state"
)

// Config is the subset of configuration the circuit breaker consults.
type Config struct {
	MaxBlocks int
}

// ShouldTrip reports whether the breaker should trip given the session's
// current review state: it trips if already tripped, or if block_count has
// reached the configured maximum.
func ShouldTrip(r *state.Review, cfg Config) bool {
	if r.CircuitBreakerTripped {
		return true
	}
	return r.BlockCount >= cfg.MaxBlocks
}

// Trip marks the review as tripped and disables further review for the
// session, logging a warning since this degrades the gate's behavior for the
// remainder of the session.
func Trip(r *state.Review, log *logging.Logger) {
	r.CircuitBreakerTripped = true
	r.Enabled = false
	if log != nil {
		log.Warn("circuit_breaker_tripped", map[string]any{
			"block_count": r.BlockCount,
		})
	}
}
