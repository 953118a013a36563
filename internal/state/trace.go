package state

import (
	"time"

	"github.com/google/uuid"
)

// AppendEvent appends a trace event to the session. Callers that enforce a
// trace length budget should follow this with Compact(maxEvents).
func (s *Session) AppendEvent(eventType EventType, payload map[string]any) {
	s.Trace = append(s.Trace, TraceEvent{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Payload:   payload,
	})
}

// Compact drops the middle of the trace once it exceeds maxEvents, keeping
// a head window (so the initial session_start stays visible), a synthesized
// trace_compacted marker event, and a tail window — producing exactly
// maxEvents entries, except maxEvents=0 which still yields the single
// marker event rather than panicking.
func (s *Session) Compact(maxEvents int) {
	if len(s.Trace) <= maxEvents {
		return
	}

	keepStart := maxEvents / 2
	if keepStart > 10 {
		keepStart = 10
	}
	if keepStart < 0 {
		keepStart = 0
	}
	keepEnd := maxEvents - keepStart - 1
	if keepEnd < 0 {
		keepEnd = 0
	}

	dropped := len(s.Trace) - keepStart - keepEnd
	head := s.Trace[:keepStart]
	tail := s.Trace[len(s.Trace)-keepEnd:]

	marker := TraceEvent{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		EventType: EventTraceCompacted,
		Payload: map[string]any{
			"dropped_events": dropped,
			"kept_start":     keepStart,
			"kept_end":       keepEnd,
		},
	}

	cap := keepStart + 1 + keepEnd
	compacted := make([]TraceEvent, 0, cap)
	compacted = append(compacted, head...)
	compacted = append(compacted, marker)
	compacted = append(compacted, tail...)
	s.Trace = compacted
}
