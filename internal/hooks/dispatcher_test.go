package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bivory/roz/internal/config"
	"github.com/bivory/roz/internal/logging"
	"github.com/bivory/roz/internal/store"
)

func TestDispatchUnknownHookApproves(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	out := Dispatch("nonsense-hook", []byte(`{"session_id": "s1", "cwd": "/tmp"}`), st, cfg, logging.New())
	assert.Equal(t, Output{}, out)
}

func TestDispatchMalformedInputFailsOpenApprove(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	out := Dispatch("stop", []byte(`not json`), st, cfg, logging.New())
	assert.Equal(t, Output{}, out)
}

func TestDispatchMalformedInputPreToolUseFailsOpenAllow(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	out := Dispatch("pre-tool-use", []byte(`not json`), st, cfg, logging.New())
	assert.Equal(t, PreToolUseAllow(), out)
}

func TestDispatchSessionStartRoutes(t *testing.T) {
	st := store.NewMemoryStore()
	cfg := config.Default()
	out := Dispatch("session-start", []byte(`{"session_id": "s1", "cwd": "/tmp"}`), st, cfg, logging.New())
	_, ok := out.(Output)
	assert.True(t, ok)

	s, err := st.Get("s1")
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestMarshalOutputProducesCompactJSON(t *testing.T) {
	data, err := MarshalOutput(Block("nope"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"decision":"block"`)
}
