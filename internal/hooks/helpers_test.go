package hooks

import (
	"errors"

	"github.com/bivory/roz/internal/state"
	"github.com/bivory/roz/internal/store"
)

// failingStore is a Store whose every operation errors, used to exercise
// each handler's fail-open path.
type failingStore struct{}

var errStoreBoom = errors.New("store boom")

func (failingStore) Get(sessionID string) (*state.Session, error) { return nil, errStoreBoom }
func (failingStore) Put(s *state.Session) error                   { return errStoreBoom }
func (failingStore) List(limit int) ([]store.SessionSummary, error) {
	return nil, errStoreBoom
}
func (failingStore) Delete(sessionID string) error { return errStoreBoom }

var _ store.Store = failingStore{}
