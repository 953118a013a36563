package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bivory/roz/internal/config"
	"github.com/bivory/roz/internal/logging"
	"github.com/bivory/roz/internal/state"
	"github.com/bivory/roz/internal/store"
)

func TestHandleSessionStartCreatesNewSession(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	source := "startup"
	in := &Input{SessionID: "s1", Cwd: "/tmp", Source: &source}

	out := HandleSessionStart(in, st, cfg, logging.New())
	assert.Equal(t, "", out.Decision)

	s, err := st.Get("s1")
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Len(t, s.Trace, 1)
	assert.Equal(t, state.EventSessionStart, s.Trace[0].EventType)
	assert.Equal(t, "startup", s.Trace[0].Payload["source"])
}

func TestHandleSessionStartResumesExistingSessionUntouched(t *testing.T) {
	st := store.NewMemoryStore()
	existing := state.NewSession("s1")
	existing.Review.Enabled = true
	require.NoError(t, st.Put(existing))

	in := &Input{SessionID: "s1", Cwd: "/tmp"}
	HandleSessionStart(in, st, config.Default(), logging.New())

	s, err := st.Get("s1")
	require.NoError(t, err)
	assert.True(t, s.Review.Enabled)
	assert.Len(t, s.Trace, 0)
}

func TestHandleSessionStartFailsOpenOnStoreError(t *testing.T) {
	st := failingStore{}
	in := &Input{SessionID: "s1", Cwd: "/tmp"}
	out := HandleSessionStart(in, st, config.Default(), logging.New())
	assert.Equal(t, Output{}, out)
}
