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

func TestHandleStopSessionMissingApproves(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	in := &Input{SessionID: "missing", Cwd: "/tmp"}
	out := HandleStop(in, st, cfg, logging.New())
	assert.Equal(t, Output{}, out)
}

func TestHandleStopReviewDisabledApprovesAndRecordsEvent(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	s := state.NewSession("s1")
	require.NoError(t, st.Put(s))

	in := &Input{SessionID: "s1", Cwd: "/tmp"}
	out := HandleStop(in, st, cfg, logging.New())
	assert.Equal(t, Output{}, out)

	reloaded, err := st.Get("s1")
	require.NoError(t, err)
	require.Len(t, reloaded.Trace, 1)
	assert.Equal(t, state.EventStopHookCalled, reloaded.Trace[0].EventType)
}

func TestHandleStopAlreadyTrippedApproves(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	s := state.NewSession("s1")
	s.Review.Enabled = true
	s.Review.CircuitBreakerTripped = true
	require.NoError(t, st.Put(s))

	in := &Input{SessionID: "s1", Cwd: "/tmp"}
	out := HandleStop(in, st, cfg, logging.New())
	assert.Equal(t, Output{}, out)
}

func TestHandleStopDecisionCompleteApproves(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	s := state.NewSession("s1")
	s.Review.Enabled = true
	s.Review.Decision = state.Decision{Type: state.DecisionComplete, Summary: "all good"}
	require.NoError(t, st.Put(s))

	in := &Input{SessionID: "s1", Cwd: "/tmp"}
	out := HandleStop(in, st, cfg, logging.New())
	assert.Equal(t, Output{}, out)
}

func TestHandleStopDecisionPendingBlocksAndIncrements(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	s := state.NewSession("s1")
	s.Review.Enabled = true
	require.NoError(t, st.Put(s))

	in := &Input{SessionID: "s1", Cwd: "/tmp"}
	out := HandleStop(in, st, cfg, logging.New())
	assert.Equal(t, "block", out.Decision)
	assert.NotEmpty(t, out.Reason)

	reloaded, err := st.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Review.BlockCount)
	require.Len(t, reloaded.Review.Attempts, 1)
	assert.Equal(t, state.OutcomePending, reloaded.Review.Attempts[0].Outcome.Type)
}

func TestHandleStopDecisionIssuesBlocksWithMessage(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	s := state.NewSession("s1")
	s.Review.Enabled = true
	msg := "fix the null check"
	s.Review.Decision = state.Decision{Type: state.DecisionIssues, MessageToAgent: &msg}
	require.NoError(t, st.Put(s))

	in := &Input{SessionID: "s1", Cwd: "/tmp"}
	out := HandleStop(in, st, cfg, logging.New())
	assert.Equal(t, "block", out.Decision)
	assert.Contains(t, out.Reason, "fix the null check")

	reloaded, err := st.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Review.BlockCount)
}

func TestHandleStopTripsBreakerAtLimitAndApproves(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	cfg.CircuitBreaker.MaxBlocks = 1

	s := state.NewSession("s1")
	s.Review.Enabled = true
	s.Review.BlockCount = 1 // already at the limit before this stop call
	require.NoError(t, st.Put(s))

	in := &Input{SessionID: "s1", Cwd: "/tmp"}
	out := HandleStop(in, st, cfg, logging.New())
	assert.Equal(t, Output{}, out)

	reloaded, err := st.Get("s1")
	require.NoError(t, err)
	assert.True(t, reloaded.Review.CircuitBreakerTripped)
	assert.False(t, reloaded.Review.Enabled)
}

func TestHandleStopTripsBreakerAfterIncrementAttributesFinalBlock(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	cfg.CircuitBreaker.MaxBlocks = 2

	s := state.NewSession("s1")
	s.Review.Enabled = true
	s.Review.BlockCount = 1 // one below the limit; this call's increment trips it
	require.NoError(t, st.Put(s))

	in := &Input{SessionID: "s1", Cwd: "/tmp"}
	out := HandleStop(in, st, cfg, logging.New())
	assert.Equal(t, Output{}, out)

	reloaded, err := st.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Review.BlockCount)
	assert.True(t, reloaded.Review.CircuitBreakerTripped)
}

func TestHandleStopFailsOpenOnLoadError(t *testing.T) {
	cfg := config.Default()
	in := &Input{SessionID: "s1", Cwd: "/tmp"}
	out := HandleStop(in, failingStore{}, cfg, logging.New())
	assert.Equal(t, Output{}, out)
}
