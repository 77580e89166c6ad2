// Package types defines the shared data model for SQL analysis:
// the severity/dimension taxonomy, findings, statements, and results.
package types

import "encoding/json"

// Severity is the severity level of a finding.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Severities lists all severities in ascending order.
var Severities = []Severity{
	SeverityInfo,
	SeverityLow,
	SeverityMedium,
	SeverityHigh,
	SeverityCritical,
}

// Rank returns the position of the severity in the total order,
// INFO being the lowest. Unknown severities rank below INFO.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 1
	case SeverityLow:
		return 2
	case SeverityMedium:
		return 3
	case SeverityHigh:
		return 4
	case SeverityCritical:
		return 5
	}
	return 0
}

// Valid reports whether the severity is one of the closed set.
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// Dimension is the top-level classification axis for a finding.
type Dimension string

const (
	DimensionSecurity    Dimension = "SECURITY"
	DimensionPerformance Dimension = "PERFORMANCE"
	DimensionReliability Dimension = "RELIABILITY"
	DimensionCompliance  Dimension = "COMPLIANCE"
	DimensionQuality     Dimension = "QUALITY"
	DimensionCost        Dimension = "COST"
)

// Dimensions lists all dimensions in their declared order.
var Dimensions = []Dimension{
	DimensionSecurity,
	DimensionPerformance,
	DimensionReliability,
	DimensionCompliance,
	DimensionQuality,
	DimensionCost,
}

// Valid reports whether the dimension is one of the closed set.
func (d Dimension) Valid() bool {
	for _, known := range Dimensions {
		if d == known {
			return true
		}
	}
	return false
}

// StatementKind classifies a statement by its leading verb.
type StatementKind string

const (
	KindSelect   StatementKind = "SELECT"
	KindInsert   StatementKind = "INSERT"
	KindUpdate   StatementKind = "UPDATE"
	KindDelete   StatementKind = "DELETE"
	KindCreate   StatementKind = "CREATE"
	KindAlter    StatementKind = "ALTER"
	KindDrop     StatementKind = "DROP"
	KindTruncate StatementKind = "TRUNCATE"
	KindGrant    StatementKind = "GRANT"
	KindRevoke   StatementKind = "REVOKE"
	KindUnknown  StatementKind = "UNKNOWN"
)

// Location identifies where a statement begins in the analyzed input.
// Line and Column are 1-based.
type Location struct {
	StatementIndex int    `json:"statement_index"`
	Line           int    `json:"line"`
	Column         int    `json:"column"`
	File           string `json:"file,omitempty"`
}

// Finding is one detected problem, tied to a rule and a location.
// Findings are immutable once emitted.
type Finding struct {
	RuleID      string            `json:"rule_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Fix         string            `json:"fix,omitempty"`
	Impact      string            `json:"impact,omitempty"`
	Severity    Severity          `json:"severity"`
	Dimension   Dimension         `json:"dimension"`
	Category    string            `json:"category,omitempty"`
	Location    Location          `json:"location"`
	Query       string            `json:"query"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Statement is one segmented unit of the input, enriched with the
// parser backend's best-effort structural facts. It is created once
// per analysis and never mutated afterwards.
type Statement struct {
	Raw        string        `json:"raw"`
	Normalized string        `json:"normalized"`
	Dialect    string        `json:"dialect,omitempty"`
	Location   Location      `json:"location"`
	Tables     []string      `json:"tables,omitempty"`
	Columns    []string      `json:"columns,omitempty"`
	Kind       StatementKind `json:"kind"`
}

// Diagnostic records a non-fatal per-statement condition, such as a
// parse failure, without aborting the batch.
type Diagnostic struct {
	StatementIndex int    `json:"statement_index"`
	Message        string `json:"message"`
}

// Stats aggregates finding counts. Empty buckets are omitted.
type Stats struct {
	Total       int               `json:"total"`
	BySeverity  map[Severity]int  `json:"by_severity,omitempty"`
	ByDimension map[Dimension]int `json:"by_dimension,omitempty"`
}

// AnalysisResult aggregates all statements, findings, and diagnostics
// for one analysis run. It is read-only once returned.
type AnalysisResult struct {
	Statements  []Statement  `json:"statements"`
	Findings    []Finding    `json:"findings"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
	Stats       Stats        `json:"stats"`
}

// HasSeverityAtLeast reports whether any finding is at or above the
// given severity.
func (r *AnalysisResult) HasSeverityAtLeast(min Severity) bool {
	for _, f := range r.Findings {
		if f.Severity.Rank() >= min.Rank() {
			return true
		}
	}
	return false
}

// MarshalJSON keeps the wire schema stable even when the statement or
// finding slices are nil.
func (r *AnalysisResult) MarshalJSON() ([]byte, error) {
	type alias AnalysisResult
	out := alias(*r)
	if out.Statements == nil {
		out.Statements = []Statement{}
	}
	if out.Findings == nil {
		out.Findings = []Finding{}
	}
	return json.Marshal(out)
}

// ComputeStats derives per-severity and per-dimension counts from a
// finding list, omitting empty buckets.
func ComputeStats(findings []Finding) Stats {
	stats := Stats{Total: len(findings)}
	for _, f := range findings {
		if stats.BySeverity == nil {
			stats.BySeverity = make(map[Severity]int)
		}
		if stats.ByDimension == nil {
			stats.ByDimension = make(map[Dimension]int)
		}
		stats.BySeverity[f.Severity]++
		stats.ByDimension[f.Dimension]++
	}
	return stats
}
