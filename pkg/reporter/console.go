// Package reporter renders analysis results for humans and machines.
package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sqlward/sqlward/pkg/types"
)

// ConsoleReporter writes a colored, human-readable report.
type ConsoleReporter struct {
	out io.Writer

	// MinSeverity hides findings below the threshold. Empty shows
	// everything.
	MinSeverity types.Severity
}

// NewConsoleReporter creates a console reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Report renders the result. Findings are already ordered by
// statement index.
func (r *ConsoleReporter) Report(result *types.AnalysisResult) error {
	findings := r.visible(result.Findings)

	for _, d := range result.Diagnostics {
		fmt.Fprintf(r.out, "%s statement %d: %s\n",
			color.YellowString("⚠"), d.StatementIndex+1, d.Message)
	}

	if len(findings) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✔ No issues found."))
		return nil
	}

	for _, f := range findings {
		loc := fmt.Sprintf("%d:%d", f.Location.Line, f.Location.Column)
		if f.Location.File != "" {
			loc = f.Location.File + ":" + loc
		}

		fmt.Fprintf(r.out, "%s: [%s] %s %s\n",
			loc, severityColor(f.Severity).Sprint(f.Severity), f.RuleID, f.Title)
		fmt.Fprintf(r.out, "\t%s\n", f.Description)
		fmt.Fprintf(r.out, "\tQuery: %s\n", color.CyanString(truncate(f.Query, 80)))
		if f.Fix != "" {
			fmt.Fprintf(r.out, "\tFix: %s\n", f.Fix)
		}
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "%s %d issue(s) in %d statement(s).\n",
		color.RedString("✘"), len(findings), len(result.Statements))
	return nil
}

func (r *ConsoleReporter) visible(findings []types.Finding) []types.Finding {
	if r.MinSeverity == "" {
		return findings
	}
	var out []types.Finding
	for _, f := range findings {
		if f.Severity.Rank() >= r.MinSeverity.Rank() {
			out = append(out, f)
		}
	}
	return out
}

func severityColor(s types.Severity) *color.Color {
	switch s {
	case types.SeverityCritical:
		return color.New(color.FgRed, color.Bold)
	case types.SeverityHigh:
		return color.New(color.FgRed)
	case types.SeverityMedium:
		return color.New(color.FgYellow, color.Bold)
	case types.SeverityLow:
		return color.New(color.FgBlue, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
