// Package report formats benchmark results as text, JSON, or a markdown
// comparison table.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/weiihann/gensuite/harness"
)

// Text writes the labeled multi-line report for a single result.
func Text(w io.Writer, r *harness.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Iterations: %d\n", r.Iterations)
	fmt.Fprintf(&b, "%s avg: %.2f\n", r.Unit, r.Avg)
	fmt.Fprintf(&b, "%s min: %.2f\n", r.Unit, r.Min)
	fmt.Fprintf(&b, "%s max: %.2f\n", r.Unit, r.Max)
	fmt.Fprintf(&b, "%s overall: %.2f", r.Unit, r.Overall)

	for _, f := range r.Metadata {
		fmt.Fprintf(&b, "\n%s: %s", f.Key, f.Value)
	}

	_, err := fmt.Fprintln(w, b.String())

	return err
}

// Generate writes a markdown table comparing the given results.
func Generate(w io.Writer, results []harness.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Workload | Unit | Iterations | Elapsed | Avg "+
		"| Min | Max | Overall | CV | Samples |")
	fmt.Fprintln(w, "|----------|------|------------|---------|-----"+
		"|-----|-----|---------|----|---------|")

	for _, r := range results {
		fmt.Fprintf(w, "| %s | %s | %d | %s | %.2f | %.2f | %.2f | %.2f | %s | %d |\n",
			r.Workload,
			r.Unit,
			r.Iterations,
			formatDuration(r.Elapsed),
			r.Avg,
			r.Min,
			r.Max,
			r.Overall,
			formatCV(r.StdDev, r.Avg),
			len(r.Samples),
		)
	}

	fmt.Fprintln(w)

	// Metadata rows.
	fmt.Fprintln(w, "| Workload | Details |")
	fmt.Fprintln(w, "|----------|---------|")

	for _, r := range results {
		details := make([]string, 0, len(r.Metadata))
		for _, f := range r.Metadata {
			details = append(details, f.Key+": "+f.Value)
		}

		fmt.Fprintf(w, "| %s | %s |\n", r.Workload, strings.Join(details, ", "))
	}

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []harness.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	return fmt.Sprintf("%.2fs", d.Seconds())
}

// formatCV renders the coefficient of variation as a percentage.
func formatCV(stddev, avg float64) string {
	if avg <= 0 {
		return "-"
	}

	return fmt.Sprintf("%.1f%%", 100*stddev/avg)
}
