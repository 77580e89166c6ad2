package reporter

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/sqlward/sqlward/pkg/types"
)

// JSONReporter writes the result as indented JSON with a stable
// schema: statements and findings are always present, even when
// empty.
type JSONReporter struct {
	out io.Writer

	// MinSeverity hides findings below the threshold. Empty shows
	// everything.
	MinSeverity types.Severity
}

// NewJSONReporter creates a JSON reporter writing to out.
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{out: out}
}

// Report encodes the result. When a severity threshold is set, the
// findings are filtered and the stats recomputed to match.
func (r *JSONReporter) Report(result *types.AnalysisResult) error {
	if r.MinSeverity != "" {
		var kept []types.Finding
		for _, f := range result.Findings {
			if f.Severity.Rank() >= r.MinSeverity.Rank() {
				kept = append(kept, f)
			}
		}
		filtered := *result
		filtered.Findings = kept
		filtered.Stats = types.ComputeStats(kept)
		result = &filtered
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.Wrap(err, "encode result")
	}
	return nil
}
