package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bivory/roz/internal/stats"
)

// Stats renders the template-performance table and failure breakdown for
// `roz stats`.
func Stats(report *stats.Report, days int) string {
	var b strings.Builder

	if len(report.Templates) == 0 {
		fmt.Fprintf(&b, "No template statistics available for the last %d days.\n", days)
		fmt.Fprintf(&b, "\nSessions analyzed: %d\n", report.TotalSessions)
		fmt.Fprintf(&b, "Sessions with review attempts: %d\n", report.SessionsWithAttempts)
		return b.String()
	}

	renderStatsTable(&b, report, days)
	renderFailureBreakdown(&b, report)

	fmt.Fprintf(&b, "\nSessions analyzed: %d\n", report.TotalSessions)
	fmt.Fprintf(&b, "Sessions with review attempts: %d\n", report.SessionsWithAttempts)
	return b.String()
}

func renderStatsTable(b *strings.Builder, report *stats.Report, days int) {
	fmt.Fprintf(b, "%s\n", titleStyle.Render(fmt.Sprintf("Template Performance (last %d days):", days)))
	fmt.Fprintf(b, "%s\n", divider(70))
	fmt.Fprintf(b, "%-12s %10s %10s %12s %14s\n", "Template", "Success", "Failure", "Avg Blocks", "Success Rate")
	fmt.Fprintf(b, "%s\n", divider(70))

	ids := make([]string, 0, len(report.Templates))
	for id := range report.Templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		t := report.Templates[id]
		fmt.Fprintf(b, "%-12s %10d %10d %12.1f %13.1f%%\n",
			id, t.SuccessCount, t.FailureCount(), t.AvgBlocks(), t.SuccessRate())
	}
	fmt.Fprintf(b, "%s\n", divider(70))
}

func renderFailureBreakdown(b *strings.Builder, report *stats.Report) {
	var totalNotSpawned, totalNoDecision, totalBadSessionID, totalPending int
	for _, t := range report.Templates {
		totalNotSpawned += t.NotSpawned
		totalNoDecision += t.NoDecision
		totalBadSessionID += t.BadSessionID
		totalPending += t.Pending
	}
	totalFailures := totalNotSpawned + totalNoDecision + totalBadSessionID

	if totalFailures == 0 && totalPending == 0 {
		return
	}

	b.WriteString("\nFailure Breakdown:\n")

	pct := func(n int) float64 {
		if totalFailures == 0 {
			return 0
		}
		return float64(n) / float64(totalFailures) * 100
	}

	if totalFailures > 0 {
		if totalNotSpawned > 0 {
			fmt.Fprintf(b, "  NotSpawned:   %4d (%5.1f%%)\n", totalNotSpawned, pct(totalNotSpawned))
		}
		if totalNoDecision > 0 {
			fmt.Fprintf(b, "  NoDecision:   %4d (%5.1f%%)\n", totalNoDecision, pct(totalNoDecision))
		}
		if totalBadSessionID > 0 {
			fmt.Fprintf(b, "  BadSessionId: %4d (%5.1f%%)\n", totalBadSessionID, pct(totalBadSessionID))
		}
	}
	if totalPending > 0 {
		fmt.Fprintf(b, "  Pending:      %4d\n", totalPending)
	}
}
