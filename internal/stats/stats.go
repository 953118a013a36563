// Package stats aggregates per-template review-attempt outcomes for the
// `roz stats` command, grounded on original_source/src/cli/stats.rs.
package stats

import (
	"time"

	"github.com/bivory/roz/internal/state"
	"github.com/bivory/roz/internal/store"
)

// TemplateStats tallies attempt outcomes for one template, used to compare
// templates in an A/B test.
type TemplateStats struct {
	SuccessCount  int
	TotalBlocks   int
	NotSpawned    int
	NoDecision    int
	BadSessionID  int
	Pending       int
}

func (t *TemplateStats) record(outcome state.AttemptOutcome) {
	switch outcome.Type {
	case state.OutcomePending:
		t.Pending++
	case state.OutcomeSuccess:
		t.SuccessCount++
		t.TotalBlocks += outcome.BlocksNeeded
	case state.OutcomeNotSpawned:
		t.NotSpawned++
	case state.OutcomeNoDecision:
		t.NoDecision++
	case state.OutcomeBadSessionID:
		t.BadSessionID++
	}
}

// FailureCount is the total of every non-success, non-pending outcome.
func (t *TemplateStats) FailureCount() int {
	return t.NotSpawned + t.NoDecision + t.BadSessionID
}

// SuccessRate is the success percentage among resolved (success+failure)
// attempts, or 0 if none have resolved yet.
func (t *TemplateStats) SuccessRate() float64 {
	total := t.SuccessCount + t.FailureCount()
	if total == 0 {
		return 0
	}
	return float64(t.SuccessCount) / float64(total) * 100
}

// AvgBlocks is the mean block_count across successful reviews.
func (t *TemplateStats) AvgBlocks() float64 {
	if t.SuccessCount == 0 {
		return 0
	}
	return float64(t.TotalBlocks) / float64(t.SuccessCount)
}

// Report is the full result of Aggregate.
type Report struct {
	Templates             map[string]*TemplateStats
	TotalSessions         int
	SessionsWithAttempts  int
}

// Aggregate scans every stored session created within the last `days` days
// and tallies each review attempt's outcome by template id.
func Aggregate(st store.Store, days int) (*Report, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	summaries, err := st.List(10000)
	if err != nil {
		return nil, err
	}

	report := &Report{Templates: make(map[string]*TemplateStats)}

	for _, summary := range summaries {
		if summary.CreatedAt.Before(cutoff) {
			continue
		}
		report.TotalSessions++

		s, err := st.Get(summary.SessionID)
		if err != nil || s == nil {
			continue
		}
		if len(s.Review.Attempts) > 0 {
			report.SessionsWithAttempts++
		}
		for _, attempt := range s.Review.Attempts {
			entry, ok := report.Templates[attempt.TemplateID]
			if !ok {
				entry = &TemplateStats{}
				report.Templates[attempt.TemplateID] = entry
			}
			entry.record(attempt.Outcome)
		}
	}

	return report, nil
}
