package app

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TerminalRenderer writes the audit summary to a terminal. The three
// counts are always shown; the detail tables only when something failed
// or needs review.
type TerminalRenderer struct {
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

func (t *TerminalRenderer) Render(result *AuditResult) {
	fmt.Fprintf(t.out, "\n=== Axe Core Audit Results ===\n\n")
	fmt.Fprintf(t.out, "✅ Passed: %d checks\n", len(result.Passes))
	fmt.Fprintf(t.out, "⚠️  Needs review: %d checks\n", len(result.Incomplete))
	fmt.Fprintf(t.out, "❌ Violations: %d checks\n\n", len(result.Violations))

	if len(result.Violations) == 0 && len(result.Incomplete) == 0 {
		fmt.Fprintln(t.out, "✅ No accessibility violations found!")

		return
	}

	if len(result.Violations) > 0 {
		t.renderTable(
			fmt.Sprintf("Found %d accessibility violations", len(result.Violations)),
			result.Violations,
		)
	}

	if len(result.Incomplete) > 0 {
		t.renderTable(
			fmt.Sprintf("Found %d items needing review", len(result.Incomplete)),
			result.Incomplete,
		)
	}
}

func (t *TerminalRenderer) renderTable(title string, findings []Finding) {
	fmt.Fprintf(t.out, "%s\n", title)

	table := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "IMPACT\tDESCRIPTION\tWCAG CRITERIA")

	for _, finding := range findings {
		fmt.Fprintf(
			table,
			"%s\t%s\t%s\n",
			finding.ImpactLevel(),
			finding.Title(),
			finding.JoinedTags(),
		)
	}

	table.Flush()
	fmt.Fprintln(t.out)
}
