package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactNoopBelowLimit(t *testing.T) {
	s := NewSession("sess")
	for i := 0; i < 5; i++ {
		s.AppendEvent(EventGateAllowed, nil)
	}
	s.Compact(10)
	assert.Len(t, s.Trace, 5)
}

func TestCompactProducesExactlyMaxEvents(t *testing.T) {
	s := NewSession("sess")
	for i := 0; i < 100; i++ {
		s.AppendEvent(EventToolCompleted, map[string]any{"i": i})
	}
	s.Compact(20)
	assert.Len(t, s.Trace, 20)

	foundMarker := false
	for _, e := range s.Trace {
		if e.EventType == EventTraceCompacted {
			foundMarker = true
		}
	}
	assert.True(t, foundMarker)
}

func TestCompactZeroMaxEventsCollapsesToMarkerWithoutPanic(t *testing.T) {
	s := NewSession("sess")
	s.AppendEvent(EventSessionStart, nil)
	s.AppendEvent(EventToolCompleted, nil)

	assert.NotPanics(t, func() { s.Compact(0) })
	require.Len(t, s.Trace, 1)
	assert.Equal(t, EventTraceCompacted, s.Trace[0].EventType)
}

func TestCompactZeroMaxEventsNoopOnEmptyTrace(t *testing.T) {
	s := NewSession("sess")
	s.Compact(0)
	assert.Len(t, s.Trace, 0)
}

func TestCompactKeepsHeadAndTail(t *testing.T) {
	s := NewSession("sess")
	s.AppendEvent(EventSessionStart, map[string]any{"marker": "first"})
	for i := 0; i < 100; i++ {
		s.AppendEvent(EventToolCompleted, map[string]any{"i": i})
	}
	s.AppendEvent(EventSessionEnd, map[string]any{"marker": "last"})

	s.Compact(20)
	assert.Equal(t, EventSessionStart, s.Trace[0].EventType)
	assert.Equal(t, EventSessionEnd, s.Trace[len(s.Trace)-1].EventType)
}
