// Package store persists Session records behind a common interface, with a
// file-backed implementation for production and an in-memory one for tests.
package store

import (
	"time"

	"github.com/bivory/roz/internal/state"
)

// SessionSummary is the lightweight listing row returned by List.
type SessionSummary struct {
	SessionID   string
	FirstPrompt string
	CreatedAt   time.Time
	EventCount  int
}

// Store is the persistence interface every roz command depends on.
//
// Get returns (nil, nil) for a session id that doesn't exist, and returns an
// error when a file for the requested id exists but cannot be read or parsed
// as a valid Session. List never errors on a single bad file — it silently
// skips anything unreadable, unparsable, or missing a session_id, since a
// listing is advisory and one corrupt entry shouldn't take down the rest.
type Store interface {
	Get(sessionID string) (*state.Session, error)
	Put(session *state.Session) error
	List(limit int) ([]SessionSummary, error)
	Delete(sessionID string) error
}

func summarize(s *state.Session) SessionSummary {
	var firstPrompt string
	if len(s.Review.UserPrompts) > 0 {
		firstPrompt = s.Review.UserPrompts[0]
	}
	return SessionSummary{
		SessionID:   s.SessionID,
		FirstPrompt: firstPrompt,
		CreatedAt:   s.CreatedAt,
		EventCount:  len(s.Trace),
	}
}
