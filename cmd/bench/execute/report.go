package execute

import (
	"fmt"
	"strings"

	"github.com/5fatya/bench/cmd/bench/entities"
	"github.com/samber/lo"
)

// MakeReport resolves the final statistics into a report. Min and max are
// reported as zero when no measured run completed.
func MakeReport(stats *Statistics, totalSeconds float64, warmups int) *entities.Report {
	return &entities.Report{
		MinSeconds:   lo.Ternary(stats.Runs > 0, stats.MinSeconds, 0),
		AvgSeconds:   stats.AvgSeconds(),
		MaxSeconds:   lo.Ternary(stats.Runs > 0, stats.MaxSeconds, 0),
		TotalSeconds: totalSeconds,
		Runs:         stats.Runs,
		Fails:        stats.Fails,
		Warmups:      warmups,
	}
}

// FormatReport renders the fixed four-line text summary.
func FormatReport(report *entities.Report) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Min: %.6f seconds  Warmups: %d\n", report.MinSeconds, report.Warmups)
	fmt.Fprintf(&builder, "Avg: %.6f seconds  Runs: %d\n", report.AvgSeconds, report.Runs)
	fmt.Fprintf(&builder, "Max: %.6f seconds  Fails: %d\n", report.MaxSeconds, report.Fails)
	fmt.Fprintf(&builder, "Total: %.6f seconds\n", report.TotalSeconds)

	return builder.String()
}

// ExitCode derives the process exit status from the failure tally. A
// benchmark that completed zero runs is not itself an error.
func ExitCode(report *entities.Report) int {
	return lo.Ternary(report.Fails > 0, 1, 0)
}
