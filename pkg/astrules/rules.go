package astrules

import (
	"strconv"
	"strings"

	"github.com/sqlward/sqlward/pkg/types"
)

// MaxJoinTables is the largest number of joined table references
// considered acceptable. Strictly greater triggers the rule.
const MaxJoinTables = 5

// Rule is one structural check. Check returns whether the rule fires
// and an optional detail string overriding the static description.
type Rule struct {
	ID          string
	Title       string
	Description string
	Fix         string
	Impact      string
	Severity    types.Severity
	Dimension   types.Dimension
	Category    string
	Check       func(f *Facts) (bool, string)
}

// Rules is the built-in structural rule list in its fixed evaluation
// order.
var Rules = []Rule{
	{
		ID:          "SEC-PRIV-003",
		Title:       "Privilege Change Statement",
		Description: "Statement changes database privileges",
		Fix:         "Review grants against least privilege",
		Impact:      "Unreviewed privilege drift",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionSecurity,
		Category:    "privileges",
		Check: func(f *Facts) (bool, string) {
			kind := f.StatementKind()
			return kind == types.KindGrant || kind == types.KindRevoke, ""
		},
	},
	{
		ID:          "QUAL-JOIN-004",
		Title:       "Duplicate JOIN Target",
		Description: "Same table appears in multiple join branches",
		Fix:         "Consolidate the joins or alias intentionally",
		Impact:      "Redundant scans of the same table",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionQuality,
		Category:    "join",
		Check: func(f *Facts) (bool, string) {
			if len(f.FindAll(NodeJoin)) == 0 {
				return false, ""
			}
			seen := make(map[string]bool)
			for _, name := range f.FindAll(NodeTable) {
				key := strings.ToUpper(name)
				if seen[key] {
					return true, "table " + name + " is joined more than once"
				}
				seen[key] = true
			}
			return false, ""
		},
	},
	{
		ID:          "PERF-JOIN-003",
		Title:       "Excessive JOIN Count",
		Description: "Statement joins too many tables",
		Fix:         "Split the query or pre-aggregate",
		Impact:      "Planner search space explodes",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "join",
		Check: func(f *Facts) (bool, string) {
			n := len(f.FindAll(NodeTable))
			if n <= MaxJoinTables {
				return false, ""
			}
			return true, "statement references " + strconv.Itoa(n) + " tables"
		},
	},
}

// Run evaluates every structural rule against one statement's facts
// and returns findings in rule order. Rules whose id is present in
// disabled are skipped; disabled may be nil.
func Run(f *Facts, raw string, loc types.Location, disabled map[string]bool) []types.Finding {
	var findings []types.Finding
	for i := range Rules {
		r := &Rules[i]
		if disabled[r.ID] {
			continue
		}
		fired, detail := r.Check(f)
		if !fired {
			continue
		}
		description := r.Description
		if detail != "" {
			description = detail
		}
		findings = append(findings, types.Finding{
			RuleID:      r.ID,
			Title:       r.Title,
			Description: description,
			Fix:         r.Fix,
			Impact:      r.Impact,
			Severity:    r.Severity,
			Dimension:   r.Dimension,
			Category:    r.Category,
			Location:    loc,
			Query:       raw,
		})
	}
	return findings
}
