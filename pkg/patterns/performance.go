package patterns

import "github.com/sqlward/sqlward/pkg/types"

var performanceDetectors = []Detector{
	{
		ID:          "PERF-SCAN-001",
		Title:       "SELECT * Usage",
		Description: "Query retrieves all columns unnecessarily",
		Fix:         "Specify only needed columns",
		Impact:      "50-90% less data transfer, enables covering indexes",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "full-scan",
		Match:       matches(`(?i)SELECT\s+\*`),
	},
	{
		ID:          "PERF-SCAN-002",
		Title:       "Leading Wildcard",
		Description: "Leading % prevents index usage",
		Fix:         "Use full-text search or redesign query",
		Impact:      "Forces full table scan",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "full-scan",
		Match:       matches(`(?i)LIKE\s+['"]%`),
	},
	{
		ID:          "PERF-SCAN-003",
		Title:       "Complex LIKE Pattern",
		Description: "Multiple wildcards slow",
		Fix:         "Use full-text search",
		Impact:      "Exponential scan time",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "full-scan",
		Match:       matches(`(?i)LIKE\s+['"]%\w+%\w+%`),
	},
	{
		ID:          "PERF-SCAN-004",
		Title:       "REGEXP in WHERE",
		Description: "Regex prevents index usage",
		Fix:         "Use full-text or rewrite",
		Impact:      "Full scan",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "full-scan",
		Match:       matches(`(?i)WHERE.*~|\bREGEXP\b|\bRLIKE\b`),
	},
	{
		ID:          "PERF-SARG-001",
		Title:       "Non-SARGable WHERE",
		Description: "WHERE clause prevents index usage",
		Fix:         "Use date range or functional index",
		Impact:      "Full table scan instead of index seek",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "sargability",
		Match:       matches(`(?i)WHERE\s+(YEAR|MONTH|DAY|UPPER|LOWER)\s*\([^)]+\)\s*=`),
	},
	{
		ID:          "PERF-SARG-002",
		Title:       "Implicit Type Conversion",
		Description: "Comparing string column to number forces conversion",
		Fix:         "Use proper quotes for string values",
		Impact:      "Prevents index usage, causes full table scan",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "sargability",
		Match:       matches(`(?i)WHERE\s+\w*(name|email|code|status)\w*\s*=\s*\d+`),
	},
	{
		ID:          "PERF-SARG-003",
		Title:       "OR Prevents Index",
		Description: "OR across different columns prevents index usage",
		Fix:         "Use UNION or redesign query logic",
		Impact:      "Forces full table scan",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "sargability",
		Match:       matches(`(?i)WHERE.*\w+\s*=.*\sOR\s+\w+\s*=`),
	},
	{
		ID:          "PERF-SARG-004",
		Title:       "Function on Indexed Column",
		Description: "Function on column prevents index usage",
		Fix:         "Create functional index or rewrite condition",
		Impact:      "Full table scan instead of index seek",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "sargability",
		Match:       matches(`(?i)WHERE.*(LOWER|UPPER|TRIM|SUBSTRING|DATE|YEAR|MONTH)\s*\(\s*(id|email|user_id|created_at)`),
	},
	{
		ID:          "PERF-SARG-005",
		Title:       "CASE in WHERE Clause",
		Description: "Complex CASE in WHERE prevents optimization",
		Fix:         "Simplify logic or move to application",
		Impact:      "Prevents index usage and predicate pushdown",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "sargability",
		Match:       matches(`(?i)WHERE.*CASE\s+WHEN`),
	},
	{
		ID:          "PERF-SARG-006",
		Title:       "STRFTIME in WHERE",
		Description: "Non-SARGable date formatting",
		Fix:         "Use date ranges",
		Impact:      "Full scan",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "sargability",
		Match:       matches(`(?i)WHERE.*STRFTIME|DATE_FORMAT`),
	},
	{
		ID:          "PERF-SARG-007",
		Title:       "EXTRACT in WHERE",
		Description: "Prevents index usage",
		Fix:         "Use functional index or rewrite",
		Impact:      "Performance hit",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "sargability",
		Match:       matches(`(?i)WHERE.*EXTRACT\s*\(`),
	},
	{
		ID:          "PERF-SARG-008",
		Title:       "DATE_TRUNC in WHERE",
		Description: "DATE_TRUNC on a column defeats plain indexes",
		Fix:         "Compare against a half-open date range",
		Impact:      "Full scan on time-filtered queries",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "sargability",
		Match:       matches(`(?i)WHERE\s+DATE_TRUNC`),
	},
	{
		ID:          "PERF-JOIN-001",
		Title:       "Cartesian Product",
		Description: "Multiple tables without JOIN condition",
		Fix:         "Add proper JOIN conditions",
		Impact:      "Result set explodes exponentially",
		Severity:    types.SeverityCritical,
		Dimension:   types.DimensionPerformance,
		Category:    "join",
		Match:       matchCartesianProduct,
	},
	{
		ID:          "PERF-JOIN-002",
		Title:       "FULL OUTER JOIN",
		Description: "Expensive and rare",
		Fix:         "Consider UNION of LEFT/RIGHT",
		Impact:      "Performance overhead",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "join",
		Match:       matches(`(?i)FULL\s+OUTER\s+JOIN`),
	},
	{
		ID:          "PERF-NPLUS-001",
		Title:       "Potential N+1 Pattern",
		Description: "Query pattern suggests N+1 issue when in loop",
		Fix:         "Use JOIN or WHERE IN batch query",
		Impact:      "Network roundtrips multiply by N",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "round-trips",
		Match:       matches(`(?i)SELECT.*FROM.*WHERE\s+\w+_id\s*=\s*\?`),
	},
	{
		ID:          "PERF-SUBQ-001",
		Title:       "Correlated Subquery",
		Description: "Subquery executes once per row",
		Fix:         "Rewrite as JOIN or pre-calculate values",
		Impact:      "Quadratic performance degradation",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "subquery",
		Match:       matches(`(?i)SELECT.*\(SELECT.*FROM.*WHERE.*=.*\w+\.\w+`),
	},
	{
		ID:          "PERF-SUBQ-002",
		Title:       "Subquery in SELECT List",
		Description: "Subquery executes for every row",
		Fix:         "Convert to JOIN or pre-calculate",
		Impact:      "One subquery execution per result row",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "subquery",
		Match:       matches(`(?i)SELECT.*,.*\(SELECT`),
	},
	{
		ID:          "PERF-PAGE-001",
		Title:       "Large OFFSET Pagination",
		Description: "Large OFFSET reads and discards rows",
		Fix:         "Use cursor-based pagination with WHERE id > last_id",
		Impact:      "Performance degrades linearly with offset",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "pagination",
		Match:       matchLargeOffset,
	},
	{
		ID:          "PERF-DIST-001",
		Title:       "Unnecessary DISTINCT",
		Description: "DISTINCT on already-unique column",
		Fix:         "Remove DISTINCT for unique columns",
		Impact:      "Adds unnecessary sorting overhead",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionPerformance,
		Category:    "distinct",
		Match:       matches(`(?i)SELECT\s+DISTINCT\s+\w*id\w*`),
	},
	{
		ID:          "PERF-INLIST-001",
		Title:       "Massive IN List",
		Description: "IN clause with too many values",
		Fix:         "Use temp table JOIN instead",
		Impact:      "Query parser overhead, plan cache bloat",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "in-list",
		Match:       matchHugeInList,
	},
	{
		ID:          "PERF-EXIST-001",
		Title:       "COUNT(*) for Existence",
		Description: "Using COUNT(*) to check if rows exist",
		Fix:         "Use EXISTS instead",
		Impact:      "Counts all rows instead of stopping at first",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "existence-check",
		Match:       matches(`(?i)COUNT\s*\(\s*\*\s*\)\s*>\s*0`),
	},
	{
		ID:          "PERF-EXIST-002",
		Title:       "EXISTS without LIMIT",
		Description: "EXISTS checks all rows unnecessarily",
		Fix:         "Add LIMIT 1 to EXISTS subquery",
		Impact:      "Continues scanning after first match",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionPerformance,
		Category:    "existence-check",
		Match:       withoutLater(`(?i)EXISTS\s*\(\s*SELECT\s+`, `(?i)\bLIMIT\b`),
	},
	{
		ID:          "PERF-EXIST-003",
		Title:       "IN Subquery Inefficient",
		Description: "Use EXISTS for existence checks",
		Fix:         "Rewrite with EXISTS",
		Impact:      "Suboptimal plan",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "existence-check",
		Match:       matches(`(?i)WHERE\s+\w+\s+IN\s*\(\s*SELECT`),
	},
	{
		ID:          "PERF-EXIST-004",
		Title:       "EXISTS over COUNT",
		Description: "COUNT in subquery for existence",
		Fix:         "Use EXISTS",
		Impact:      "Unnecessary counting",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "existence-check",
		Match:       matches(`(?i)WHERE\s+\(\s*SELECT\s+COUNT`),
	},
	{
		ID:          "PERF-SET-001",
		Title:       "UNION Missing ALL",
		Description: "UNION performs unnecessary deduplication",
		Fix:         "Use UNION ALL if duplicates are acceptable",
		Impact:      "Adds expensive DISTINCT operation",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "set-operation",
		Match:       matchBareUnion,
	},
	{
		ID:          "PERF-SET-002",
		Title:       "Mixed UNION/UNION ALL",
		Description: "Inconsistent UNION usage",
		Fix:         "Standardize to UNION ALL where possible",
		Impact:      "Unnecessary dedup",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "set-operation",
		Match:       matchMixedUnion,
	},
	{
		ID:          "PERF-SET-003",
		Title:       "EXCEPT/MINUS Inefficient",
		Description: "Use NOT EXISTS for better perf",
		Fix:         "Rewrite with NOT EXISTS",
		Impact:      "Slower set operations",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "set-operation",
		Match:       matches(`(?i)\bEXCEPT\b|\bMINUS\b`),
	},
	{
		ID:          "PERF-SET-004",
		Title:       "INTERSECT Inefficient",
		Description: "Use JOIN for better perf",
		Fix:         "Rewrite with JOIN",
		Impact:      "Slower set operations",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "set-operation",
		Match:       matches(`(?i)\bINTERSECT\b`),
	},
	{
		ID:          "PERF-SET-005",
		Title:       "UNION in View",
		Description: "Views over UNION are hard for planners to optimize",
		Fix:         "Split the view or materialize the union",
		Impact:      "Predicates stop pushing down into branches",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "set-operation",
		Match:       matches(`(?i)CREATE\s+VIEW.*UNION`),
	},
	{
		ID:          "PERF-AGG-001",
		Title:       "HAVING Instead of WHERE",
		Description: "HAVING filters after grouping",
		Fix:         "Use WHERE for row filtering before GROUP BY",
		Impact:      "Processes all rows before filtering",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "aggregation",
		Match:       matchHavingNoAggregates,
	},
	{
		ID:          "PERF-JSON-001",
		Title:       "JSON Extract Unindexed",
		Description: "JSON ops without index",
		Fix:         "Add JSON index",
		Impact:      "Slow on large JSON",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "json",
		Match:       matches(`(?i)JSON_EXTRACT|->|->>`),
	},
	{
		ID:          "PERF-WIN-001",
		Title:       "Window Function without PARTITION",
		Description: "Global window may be inefficient",
		Fix:         "Add PARTITION BY",
		Impact:      "Full sort",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "window",
		Match:       withoutLater(`(?i)(ROW_NUMBER|RANK|DENSE_RANK)\s*\(\s*\)`, `(?i)PARTITION`),
	},
	{
		ID:          "PERF-HINT-001",
		Title:       "FORCE INDEX",
		Description: "Forced index hints pin the planner to one plan",
		Fix:         "Fix statistics or the index instead of forcing",
		Impact:      "Plan cannot adapt as data changes",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "index-hint",
		Match:       matches(`(?i)FORCE\s+INDEX`),
	},
	{
		ID:          "PERF-HINT-002",
		Title:       "USE INDEX",
		Description: "Index hint narrows planner choices",
		Fix:         "Prefer letting the optimizer choose",
		Impact:      "Suboptimal plans as data evolves",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionPerformance,
		Category:    "index-hint",
		Match:       matches(`(?i)USE\s+INDEX`),
	},
	{
		ID:          "PERF-HINT-003",
		Title:       "IGNORE INDEX",
		Description: "Ignoring an index hides the real problem",
		Fix:         "Investigate why the index misbehaves",
		Impact:      "Masks statistics or schema issues",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "index-hint",
		Match:       matches(`(?i)IGNORE\s+INDEX`),
	},
	{
		ID:          "PERF-PROC-001",
		Title:       "Cursor Usage",
		Description: "Cursors are slow for large sets",
		Fix:         "Use set-based ops",
		Impact:      "Performance killer",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "procedural",
		Match:       matches(`(?i)DECLARE.*CURSOR`),
	},
	{
		ID:          "PERF-PROC-002",
		Title:       "WHILE Loop",
		Description: "Row-by-row processing",
		Fix:         "Use set-based",
		Impact:      "Slow execution",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionPerformance,
		Category:    "procedural",
		Match:       matches(`(?i)WHILE\s+.*BEGIN`),
	},
	{
		ID:          "PERF-PROC-003",
		Title:       "SELECT INTO Temp Table",
		Description: "Materializes results into a temp table",
		Fix:         "Stream results or use a CTE",
		Impact:      "tempdb pressure and extra writes",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "procedural",
		Match:       matches(`(?i)SELECT.*INTO\s+#`),
	},
	{
		ID:          "PERF-PROC-004",
		Title:       "Table Variable",
		Description: "Table variables have no statistics",
		Fix:         "Use a temp table for large sets",
		Impact:      "Poor cardinality estimates",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionPerformance,
		Category:    "procedural",
		Match:       matches(`(?i)DECLARE\s+@\w+\s+TABLE`),
	},
	{
		ID:          "PERF-PROC-005",
		Title:       "String Concatenation Loop",
		Description: "Variable concatenation in procedural SQL",
		Fix:         "Use STRING_AGG or set-based aggregation",
		Impact:      "Quadratic string building",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "procedural",
		Match:       matches(`(?i)(SET|SELECT)\s+@\w+\s*=\s*@\w+\s*\+`),
	},
}
