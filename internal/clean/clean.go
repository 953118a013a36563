// Package clean implements the `roz clean` retention sweep, grounded on
// original_source/src/cli/clean.rs.
package clean

import (
	"strconv"
	"strings"
	"time"

	"github.com/bivory/roz/internal/rozerr"
	"github.com/bivory/roz/internal/store"
)

// ParseDuration parses a duration string like "7d", "24h", "30m", or a bare
// number (days). An empty string defaults to 7 days.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 7 * 24 * time.Hour, nil
	}

	if stripped, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(stripped)
		if err != nil {
			return 0, rozerr.InvalidState("invalid duration: %s", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	if stripped, ok := strings.CutSuffix(s, "h"); ok {
		n, err := strconv.Atoi(stripped)
		if err != nil {
			return 0, rozerr.InvalidState("invalid duration: %s", s)
		}
		return time.Duration(n) * time.Hour, nil
	}
	if stripped, ok := strings.CutSuffix(s, "m"); ok {
		n, err := strconv.Atoi(stripped)
		if err != nil {
			return 0, rozerr.InvalidState("invalid duration: %s", s)
		}
		return time.Duration(n) * time.Minute, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, rozerr.InvalidState("invalid duration: %s", s)
	}
	return time.Duration(n) * 24 * time.Hour, nil
}

// Run deletes every session older than `before` (or every session, if all is
// set), skipping any still-active session (review enabled with a pending
// decision). Returns the number removed.
func Run(st store.Store, before string, all bool) (int, error) {
	var cutoff time.Time
	if all {
		cutoff = time.Now().UTC()
	} else {
		d, err := ParseDuration(before)
		if err != nil {
			return 0, err
		}
		cutoff = time.Now().UTC().Add(-d)
	}

	summaries, err := st.List(10000)
	if err != nil {
		return 0, rozerr.Storage(err, "list sessions")
	}

	removed := 0
	for _, summary := range summaries {
		if !summary.CreatedAt.Before(cutoff) {
			continue
		}

		s, err := st.Get(summary.SessionID)
		if err == nil && s != nil && s.Review.Enabled && s.Review.Decision.IsPending() {
			continue
		}

		if err := st.Delete(summary.SessionID); err != nil {
			return removed, rozerr.Storage(err, "delete session %s", summary.SessionID)
		}
		removed++
	}

	return removed, nil
}
