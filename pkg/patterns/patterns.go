// Package patterns holds the built-in textual detector catalog. Every
// detector is pre-compiled and evaluated against each statement in a
// fixed declared order, so analysis output is deterministic.
package patterns

import (
	"regexp"

	"github.com/sqlward/sqlward/pkg/types"
)

// Detection thresholds. A value strictly greater than the threshold
// triggers the detector.
const (
	// MaxOffsetRows is the largest OFFSET considered acceptable for
	// offset pagination.
	MaxOffsetRows = 1000
	// MaxInListValues is the largest IN list size considered
	// acceptable.
	MaxInListValues = 50
)

// MatchFunc reports whether a detector fires on the given statement
// text. The optional detail string replaces the detector's static
// description in the emitted finding.
type MatchFunc func(sql string) (matched bool, detail string)

// Detector is one textual rule of the built-in catalog. Detectors
// match against the normalized statement text unless UseRaw is set,
// in which case they inspect the raw text (comment and whitespace
// sensitive rules need it).
type Detector struct {
	ID          string
	Title       string
	Description string
	Fix         string
	Impact      string
	Severity    types.Severity
	Dimension   types.Dimension
	Category    string
	UseRaw      bool
	Match       MatchFunc
}

// catalog is the full detector list in its fixed evaluation order.
var catalog = buildCatalog()

func buildCatalog() []Detector {
	var all []Detector
	all = append(all, securityDetectors...)
	all = append(all, performanceDetectors...)
	all = append(all, reliabilityDetectors...)
	all = append(all, complianceDetectors...)
	all = append(all, qualityDetectors...)
	all = append(all, costDetectors...)
	return all
}

// Catalog returns the built-in detectors in evaluation order. The
// returned slice is shared; callers must not modify it.
func Catalog() []Detector {
	return catalog
}

// Find returns the detector with the given id, or nil.
func Find(id string) *Detector {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// Run evaluates the whole catalog against one statement and returns
// findings in catalog order, at most one per detector. Detectors
// whose id is present in disabled are skipped; disabled may be nil.
func Run(normalized, raw string, loc types.Location, disabled map[string]bool) []types.Finding {
	var findings []types.Finding
	for i := range catalog {
		d := &catalog[i]
		if disabled[d.ID] {
			continue
		}
		text := normalized
		if d.UseRaw {
			text = raw
		}
		matched, detail := d.Match(text)
		if !matched {
			continue
		}
		description := d.Description
		if detail != "" {
			description = detail
		}
		findings = append(findings, types.Finding{
			RuleID:      d.ID,
			Title:       d.Title,
			Description: description,
			Fix:         d.Fix,
			Impact:      d.Impact,
			Severity:    d.Severity,
			Dimension:   d.Dimension,
			Category:    d.Category,
			Location:    loc,
			Query:       raw,
		})
	}
	return findings
}

// matches compiles a pattern into a plain boolean MatchFunc.
func matches(pattern string) MatchFunc {
	re := regexp.MustCompile(pattern)
	return func(sql string) (bool, string) {
		return re.MatchString(sql), ""
	}
}

// notFollowedBy fires when pattern matches somewhere and the text
// right after that match does not match followed. This replaces
// negative lookahead, which RE2 does not support. followed must be
// anchored with ^.
func notFollowedBy(pattern, followed string) MatchFunc {
	re := regexp.MustCompile(pattern)
	not := regexp.MustCompile(followed)
	return func(sql string) (bool, string) {
		for _, loc := range re.FindAllStringIndex(sql, -1) {
			if !not.MatchString(sql[loc[1]:]) {
				return true, ""
			}
		}
		return false, ""
	}
}

// withoutLater fires when pattern matches and later never appears in
// the remainder of the statement.
func withoutLater(pattern, later string) MatchFunc {
	re := regexp.MustCompile(pattern)
	lat := regexp.MustCompile(later)
	return func(sql string) (bool, string) {
		loc := re.FindStringIndex(sql)
		if loc == nil {
			return false, ""
		}
		return !lat.MatchString(sql[loc[1]:]), ""
	}
}
