package patterns

import (
	"regexp"
	"strconv"
	"strings"
)

// Custom predicates for detectors whose original intent needs
// backreferences, lookahead, or counting, none of which RE2 offers.

var (
	updateDeleteHeadRe = regexp.MustCompile(`(?i)^\s*(UPDATE|DELETE)(\s+FROM)?\s+\w+`)
	commaFromRe        = regexp.MustCompile(`(?i)FROM\s+\w+\s*,\s*\w+`)
	whereOrJoinRe      = regexp.MustCompile(`(?i)\bWHERE\b|\bJOIN\b`)
	offsetRe           = regexp.MustCompile(`(?i)OFFSET\s+(\d+)`)
	inListRe           = regexp.MustCompile(`(?i)\bIN\s*\(([^)]+)\)`)
	havingRe           = regexp.MustCompile(`(?i)\bHAVING\b`)
	havingAggRe        = regexp.MustCompile(`(?i)^\s+(COUNT|SUM|AVG|MAX|MIN)\b`)
	unionRe            = regexp.MustCompile(`(?i)\bUNION\b`)
	unionAllRe         = regexp.MustCompile(`(?i)^\s+ALL\b`)
	eqPairOrRe         = regexp.MustCompile(`(?i)(\w+)\s*=\s*(\S+)\s+OR\s+(\w+)\s*=\s*(\S+)`)
	eqPairAndRe        = regexp.MustCompile(`(?i)WHERE\s+(\w+)\s*=\s*(\d+)\s+AND\s+(\w+)\s*=\s*(\d+)`)
	nullTautologyRe    = regexp.MustCompile(`(?i)WHERE\s+(\w+)\s+IS\s+NOT\s+NULL\s+OR\s+(\w+)\s+IS\s+NULL`)
	nullContradictRe   = regexp.MustCompile(`(?i)WHERE\s+(\w+)\s+IS\s+NOT\s+NULL\s+AND\s+(\w+)\s+IS\s+NULL`)
	caseTwoWhenRe      = regexp.MustCompile(`(?i)CASE\s+WHEN\b.*\bWHEN\b`)
	endRe              = regexp.MustCompile(`(?i)\bEND\b`)
	elseAfterEndRe     = regexp.MustCompile(`(?i)^\s+ELSE\b`)
	aliasRe            = regexp.MustCompile(`(?i)(\w+)\s+AS\s+(\w+)\b`)
	castRe             = regexp.MustCompile(`(?i)CAST\s*\(\s*(\w+)\s+AS\s+(\w+)\s*\)`)
	selectListRe       = regexp.MustCompile(`(?i)SELECT\s+(?:DISTINCT\s+)?(.*?)\s+FROM\b`)
	joinTargetRe       = regexp.MustCompile(`(?i)\bJOIN\s+(\w+)`)
	cteHeadRe          = regexp.MustCompile(`(?i)WITH\s+(?:RECURSIVE\s+)?(\w+)\s+AS\b`)
	selectKwRe         = regexp.MustCompile(`(?i)\bSELECT\b`)
)

// matchMissingWhere fires on UPDATE or DELETE statements that carry
// no WHERE clause at all.
func matchMissingWhere(sql string) (bool, string) {
	if !updateDeleteHeadRe.MatchString(sql) {
		return false, ""
	}
	return !strings.Contains(strings.ToUpper(sql), "WHERE"), ""
}

// matchCartesianProduct fires on comma-separated FROM lists with
// neither a WHERE clause nor an explicit JOIN.
func matchCartesianProduct(sql string) (bool, string) {
	return commaFromRe.MatchString(sql) && !whereOrJoinRe.MatchString(sql), ""
}

// matchLargeOffset fires when an OFFSET exceeds MaxOffsetRows.
func matchLargeOffset(sql string) (bool, string) {
	m := offsetRe.FindStringSubmatch(sql)
	if m == nil {
		return false, ""
	}
	offset, err := strconv.Atoi(m[1])
	if err != nil || offset <= MaxOffsetRows {
		return false, ""
	}
	return true, "OFFSET " + m[1] + " reads and discards " + m[1] + " rows"
}

// matchHugeInList fires when an IN list holds more than
// MaxInListValues values.
func matchHugeInList(sql string) (bool, string) {
	m := inListRe.FindStringSubmatch(sql)
	if m == nil {
		return false, ""
	}
	n := len(strings.Split(m[1], ","))
	if n <= MaxInListValues {
		return false, ""
	}
	return true, "IN clause with " + strconv.Itoa(n) + " values"
}

// matchHavingNoAggregates fires on HAVING used for plain row
// filtering: no aggregate right after it and no WHERE clause at all.
func matchHavingNoAggregates(sql string) (bool, string) {
	loc := havingRe.FindStringIndex(sql)
	if loc == nil || havingAggRe.MatchString(sql[loc[1]:]) {
		return false, ""
	}
	return !strings.Contains(strings.ToUpper(sql), "WHERE"), ""
}

// bareUnions counts UNION occurrences not followed by ALL, and the
// ones that are.
func bareUnions(sql string) (bare, all int) {
	for _, loc := range unionRe.FindAllStringIndex(sql, -1) {
		if unionAllRe.MatchString(sql[loc[1]:]) {
			all++
		} else {
			bare++
		}
	}
	return bare, all
}

func matchBareUnion(sql string) (bool, string) {
	bare, _ := bareUnions(sql)
	return bare > 0, ""
}

func matchMixedUnion(sql string) (bool, string) {
	bare, all := bareUnions(sql)
	return bare > 0 && all > 0, ""
}

// matchContradictoryWhere fires when the same column is compared to
// two different constants joined by AND.
func matchContradictoryWhere(sql string) (bool, string) {
	for _, m := range eqPairAndRe.FindAllStringSubmatch(sql, -1) {
		if strings.EqualFold(m[1], m[3]) && m[2] != m[4] {
			return true, ""
		}
	}
	return false, ""
}

func matchNullTautology(sql string) (bool, string) {
	for _, m := range nullTautologyRe.FindAllStringSubmatch(sql, -1) {
		if strings.EqualFold(m[1], m[2]) {
			return true, ""
		}
	}
	return false, ""
}

func matchNullContradiction(sql string) (bool, string) {
	for _, m := range nullContradictRe.FindAllStringSubmatch(sql, -1) {
		if strings.EqualFold(m[1], m[2]) {
			return true, ""
		}
	}
	return false, ""
}

// matchMissingCaseElse fires on a multi-branch CASE whose END is not
// preceded by an ELSE branch.
func matchMissingCaseElse(sql string) (bool, string) {
	loc := caseTwoWhenRe.FindStringIndex(sql)
	if loc == nil {
		return false, ""
	}
	body := sql[loc[0]:]
	end := endRe.FindStringIndex(body)
	if end == nil {
		return false, ""
	}
	return !strings.Contains(strings.ToUpper(body[:end[0]]), "ELSE"), ""
}

func matchRedundantOr(sql string) (bool, string) {
	for _, m := range eqPairOrRe.FindAllStringSubmatch(sql, -1) {
		if strings.EqualFold(m[1], m[3]) && strings.EqualFold(m[2], m[4]) {
			return true, ""
		}
	}
	return false, ""
}

func matchRedundantAlias(sql string) (bool, string) {
	for _, m := range aliasRe.FindAllStringSubmatch(sql, -1) {
		if strings.EqualFold(m[1], m[2]) {
			return true, ""
		}
	}
	return false, ""
}

// matchRedundantCast fires on CAST(col AS type) where col already
// carries the target type suffix, e.g. CAST(id_int AS INT).
func matchRedundantCast(sql string) (bool, string) {
	for _, m := range castRe.FindAllStringSubmatch(sql, -1) {
		col := strings.ToUpper(m[1])
		typ := strings.ToUpper(m[2])
		if strings.HasSuffix(col, "_"+typ) || col == typ {
			return true, ""
		}
	}
	return false, ""
}

// matchDuplicateSelectColumn fires when the SELECT list names the
// same expression twice.
func matchDuplicateSelectColumn(sql string) (bool, string) {
	m := selectListRe.FindStringSubmatch(sql)
	if m == nil {
		return false, ""
	}
	seen := make(map[string]bool)
	for _, item := range strings.Split(m[1], ",") {
		item = strings.ToUpper(strings.TrimSpace(item))
		if item == "" || item == "*" {
			continue
		}
		if seen[item] {
			return true, ""
		}
		seen[item] = true
	}
	return false, ""
}

func matchDuplicateJoin(sql string) (bool, string) {
	seen := make(map[string]bool)
	for _, m := range joinTargetRe.FindAllStringSubmatch(sql, -1) {
		target := strings.ToUpper(m[1])
		if seen[target] {
			return true, ""
		}
		seen[target] = true
	}
	return false, ""
}

// matchUnusedCTE fires when a CTE name never appears after the final
// SELECT keyword, meaning the outer query cannot be reading it.
func matchUnusedCTE(sql string) (bool, string) {
	m := cteHeadRe.FindStringSubmatch(sql)
	if m == nil {
		return false, ""
	}
	locs := selectKwRe.FindAllStringIndex(sql, -1)
	if len(locs) < 2 {
		return false, ""
	}
	last := locs[len(locs)-1]
	return !strings.Contains(strings.ToUpper(sql[last[1]:]), strings.ToUpper(m[1])), ""
}

// matchUncommentedComplex inspects raw text: three or more JOINs and
// not a single comment.
func matchUncommentedComplex(sql string) (bool, string) {
	joins := len(joinTargetRe.FindAllString(sql, -1))
	if joins < 3 {
		return false, ""
	}
	return !strings.Contains(sql, "--") && !strings.Contains(sql, "/*"), ""
}
