package patterns

import "github.com/sqlward/sqlward/pkg/types"

var reliabilityDetectors = []Detector{
	{
		ID:          "REL-WHERE-001",
		Title:       "Missing WHERE in UPDATE/DELETE",
		Description: "UPDATE/DELETE without WHERE affects entire table",
		Fix:         "Add WHERE clause or use TRUNCATE if intentional",
		Impact:      "Can delete/update entire table accidentally",
		Severity:    types.SeverityCritical,
		Dimension:   types.DimensionReliability,
		Category:    "missing WHERE",
		Match:       matchMissingWhere,
	},
	{
		ID:          "REL-NULL-001",
		Title:       "NOT IN with NULLable",
		Description: "NOT IN with subquery fails if any NULL values",
		Fix:         "Use NOT EXISTS instead",
		Impact:      "Query returns no results if subquery contains NULL",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionReliability,
		Category:    "null-handling",
		Match:       matches(`(?i)NOT\s+IN\s*\(\s*SELECT`),
	},
	{
		ID:          "REL-NULL-002",
		Title:       "NULL Comparison Error",
		Description: "Using = or != with NULL always returns UNKNOWN",
		Fix:         "Use IS NULL or IS NOT NULL",
		Impact:      "Condition never matches any rows",
		Severity:    types.SeverityCritical,
		Dimension:   types.DimensionReliability,
		Category:    "null-handling",
		Match:       matches(`(?i)=\s*NULL|!=\s*NULL`),
	},
	{
		ID:          "REL-FLOAT-001",
		Title:       "Floating Point Equality",
		Description: "Exact equality on floating point values",
		Fix:         "Use range comparison or DECIMAL type",
		Impact:      "May miss values due to precision issues",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "numeric",
		Match:       matches(`(?i)(price|amount|total|cost|value)\s*=\s*\d+\.\d+`),
	},
	{
		ID:          "REL-TYPE-001",
		Title:       "DECIMAL without Precision",
		Description: "Default precision may be wrong",
		Fix:         "Specify (precision, scale)",
		Impact:      "Data truncation",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "numeric",
		Match:       notFollowedBy(`(?i)\bDECIMAL\b`, `^\s*\(\s*\d+\s*,\s*\d+\s*\)`),
	},
	{
		ID:          "REL-TIME-001",
		Title:       "BETWEEN with Timestamps",
		Description: "BETWEEN with dates may miss end-of-day records",
		Fix:         "Use >= start AND < end+1 day",
		Impact:      "Misses records with time components",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "temporal",
		Match:       matches(`(?i)BETWEEN.*\d{4}-\d{2}-\d{2}.*AND.*\d{4}-\d{2}-\d{2}`),
	},
	{
		ID:          "REL-TIME-002",
		Title:       "NOW without Timezone",
		Description: "Timezone-ambiguous timestamp",
		Fix:         "Use AT TIME ZONE",
		Impact:      "Incorrect times across zones",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "temporal",
		Match:       withoutLater(`(?i)\b(NOW|CURRENT_TIMESTAMP|GETDATE)\s*\(\s*\)`, `(?i)AT\s+TIME\s+ZONE`),
	},
	{
		ID:          "REL-TIME-003",
		Title:       "Date Math without INTERVAL",
		Description: "Ambiguous date arithmetic",
		Fix:         "Use INTERVAL",
		Impact:      "DB-specific behavior",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "temporal",
		Match:       notFollowedBy(`(?i)(created_at|updated_at)\s*[+-]\s*\d+`, `(?i)^\s+INTERVAL`),
	},
	{
		ID:          "REL-ORDER-001",
		Title:       "OFFSET without ORDER BY",
		Description: "OFFSET without ORDER BY returns random results",
		Fix:         "Add ORDER BY for deterministic results",
		Impact:      "Different results each execution",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionReliability,
		Category:    "ordering",
		Match:       withoutLater(`(?i)OFFSET\s+\d+`, `(?i)ORDER\s+BY`),
	},
	{
		ID:          "REL-ORDER-002",
		Title:       "Ambiguous ORDER BY",
		Description: "ORDER BY without unique key may be non-deterministic",
		Fix:         "Add unique column (e.g., id) to ORDER BY",
		Impact:      "Results may vary across executions",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "ordering",
		Match:       withoutLater(`(?i)ORDER\s+BY\s+`, `(?i)\b(id|pk|primary_key)\b`),
	},
	{
		ID:          "REL-LOGIC-001",
		Title:       "Always True Condition",
		Description: "Tautology in WHERE (e.g., 1=1)",
		Fix:         "Remove unnecessary condition",
		Impact:      "Full table scan, no filtering",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "logic",
		Match:       matches(`(?i)WHERE\s+1\s*=\s*1|WHERE\s+TRUE`),
	},
	{
		ID:          "REL-LOGIC-002",
		Title:       "Always False Condition",
		Description: "Contradiction in WHERE (e.g., 1=0)",
		Fix:         "Remove or fix condition",
		Impact:      "Query always empty",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionReliability,
		Category:    "logic",
		Match:       matches(`(?i)WHERE\s+1\s*=\s*0|WHERE\s+FALSE`),
	},
	{
		ID:          "REL-LOGIC-003",
		Title:       "Contradictory WHERE",
		Description: "Impossible conditions in WHERE",
		Fix:         "Remove contradictory clauses",
		Impact:      "Query always returns no rows",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionReliability,
		Category:    "logic",
		Match:       matchContradictoryWhere,
	},
	{
		ID:          "REL-LOGIC-004",
		Title:       "Tautology in WHERE",
		Description: "Always-true logic (e.g., col IS NULL OR col IS NOT NULL)",
		Fix:         "Simplify condition",
		Impact:      "No effective filtering",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "logic",
		Match:       matchNullTautology,
	},
	{
		ID:          "REL-LOGIC-005",
		Title:       "Contradiction in WHERE",
		Description: "Always-false logic (e.g., col IS NOT NULL AND col IS NULL)",
		Fix:         "Remove condition",
		Impact:      "Always empty results",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionReliability,
		Category:    "logic",
		Match:       matchNullContradiction,
	},
	{
		ID:          "REL-LOGIC-006",
		Title:       "Missing CASE ELSE",
		Description: "CASE without ELSE may return NULL unexpectedly",
		Fix:         "Add ELSE clause",
		Impact:      "Unexpected NULLs in results",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "logic",
		Match:       matchMissingCaseElse,
	},
	{
		ID:          "REL-DDL-001",
		Title:       "INSERT without Columns",
		Description: "INSERT VALUES without column list",
		Fix:         "Specify column names",
		Impact:      "Breaks if table schema changes",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "ddl-safety",
		Match:       matches(`(?i)INSERT\s+INTO\s+\w+\s+VALUES`),
	},
	{
		ID:          "REL-DDL-002",
		Title:       "INSERT SELECT *",
		Description: "SELECT * in INSERT can break on schema changes",
		Fix:         "Specify columns",
		Impact:      "Fragile to schema evolution",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "ddl-safety",
		Match:       matches(`(?i)INSERT\s+INTO.*SELECT\s+\*`),
	},
	{
		ID:          "REL-DDL-003",
		Title:       "TRUNCATE without CASCADE",
		Description: "May fail with foreign keys",
		Fix:         "Add CASCADE if needed",
		Impact:      "Runtime errors on related tables",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionReliability,
		Category:    "ddl-safety",
		Match:       notFollowedBy(`(?i)TRUNCATE\s+TABLE\s+\w+`, `(?i)^\s+CASCADE`),
	},
	{
		ID:          "REL-DDL-004",
		Title:       "DROP without IF EXISTS",
		Description: "Fails if object doesn't exist",
		Fix:         "Add IF EXISTS",
		Impact:      "Script failures in idempotent ops",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "ddl-safety",
		Match:       notFollowedBy(`(?i)DROP\s+(TABLE|VIEW|INDEX)\s+`, `(?i)^IF\s+EXISTS`),
	},
	{
		ID:          "REL-CTE-001",
		Title:       "Recursive CTE without LIMIT",
		Description: "Risk of infinite recursion",
		Fix:         "Add LIMIT or termination condition",
		Impact:      "Potential crash",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionReliability,
		Category:    "recursion",
		Match:       withoutLater(`(?i)WITH\s+RECURSIVE`, `(?i)\bLIMIT\b`),
	},
	{
		ID:          "REL-JOIN-001",
		Title:       "OUTER JOIN with WHERE NOT NULL",
		Description: "Turns OUTER to INNER JOIN",
		Fix:         "Move to ON clause",
		Impact:      "Unexpected row loss",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionReliability,
		Category:    "join",
		Match:       matches(`(?i)LEFT\s+JOIN.*WHERE.*IS\s+NOT\s+NULL`),
	},
	{
		ID:          "REL-JOIN-002",
		Title:       "NATURAL JOIN Usage",
		Description: "Implicit column matching risky",
		Fix:         "Use explicit JOIN ON",
		Impact:      "Breaks on schema changes",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "join",
		Match:       matches(`(?i)NATURAL\s+JOIN`),
	},
	{
		ID:          "REL-LOCK-001",
		Title:       "SELECT FOR UPDATE without NOWAIT",
		Description: "Risk of deadlocks",
		Fix:         "Add NOWAIT or SKIP LOCKED",
		Impact:      "Concurrency issues",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionReliability,
		Category:    "locking",
		Match:       notFollowedBy(`(?i)FOR\s+UPDATE`, `(?i)^\s+(NOWAIT|SKIP\s+LOCKED)`),
	},
	{
		ID:          "REL-LOCK-002",
		Title:       "LOCK IN SHARE MODE",
		Description: "Shared locks block writers",
		Fix:         "Use FOR SHARE with timeout or rethink the lock",
		Impact:      "Writer starvation under load",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionReliability,
		Category:    "locking",
		Match:       matches(`(?i)LOCK\s+IN\s+SHARE\s+MODE`),
	},
	{
		ID:          "REL-SUBQ-001",
		Title:       "Scalar Subquery Risk",
		Description: "Subquery may return multiple rows",
		Fix:         "Add LIMIT 1",
		Impact:      "Runtime error",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionReliability,
		Category:    "subquery",
		Match:       withoutLater(`(?i)=\s*\(\s*SELECT`, `(?i)LIMIT\s+1`),
	},
}
