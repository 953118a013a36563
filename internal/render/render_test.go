package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bivory/roz/internal/stats"
	"github.com/bivory/roz/internal/store"
)

func TestListEmptyShowsRozHome(t *testing.T) {
	out := List(nil, "/home/user/.roz")
	assert.Contains(t, out, "No sessions found")
	assert.Contains(t, out, "/home/user/.roz")
}

func TestListRendersSessionsAndPreviewTruncation(t *testing.T) {
	long := ""
	for i := 0; i < 80; i++ {
		long += "x"
	}
	sessions := []store.SessionSummary{
		{SessionID: "s1", FirstPrompt: "short prompt", CreatedAt: time.Now()},
		{SessionID: "s2", FirstPrompt: long, CreatedAt: time.Now()},
		{SessionID: "s3", FirstPrompt: "", CreatedAt: time.Now()},
	}
	out := List(sessions, "/home/user/.roz")
	assert.Contains(t, out, "s1")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "(no prompt)")
	assert.Contains(t, out, "Showing 3 session(s)")
}

func TestStatsEmptyReport(t *testing.T) {
	report := &stats.Report{Templates: map[string]*stats.TemplateStats{}, TotalSessions: 2}
	out := Stats(report, 30)
	assert.Contains(t, out, "No template statistics")
	assert.Contains(t, out, "Sessions analyzed: 2")
}

func TestStatsRendersTemplateRows(t *testing.T) {
	report := &stats.Report{
		Templates: map[string]*stats.TemplateStats{
			"default": {SuccessCount: 3, TotalBlocks: 6, NotSpawned: 1},
		},
		TotalSessions:        4,
		SessionsWithAttempts: 4,
	}
	out := Stats(report, 7)
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "Failure Breakdown")
	assert.Contains(t, out, "NotSpawned")
}
