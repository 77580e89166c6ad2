package patterns

import "github.com/sqlward/sqlward/pkg/types"

var qualityDetectors = []Detector{
	{
		ID:          "QUAL-REDUN-001",
		Title:       "Redundant OR Condition",
		Description: "Duplicate conditions in OR",
		Fix:         "Remove redundant terms",
		Impact:      "Unnecessary computation",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "redundancy",
		Match:       matchRedundantOr,
	},
	{
		ID:          "QUAL-REDUN-002",
		Title:       "Redundant DISTINCT with GROUP BY",
		Description: "DISTINCT unnecessary with GROUP BY",
		Fix:         "Remove DISTINCT",
		Impact:      "Extra overhead",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "redundancy",
		Match:       matches(`(?i)SELECT\s+DISTINCT.*GROUP\s+BY`),
	},
	{
		ID:          "QUAL-REDUN-003",
		Title:       "Redundant Alias",
		Description: "Alias same as column name",
		Fix:         "Remove alias",
		Impact:      "Unnecessary clutter",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "redundancy",
		Match:       matchRedundantAlias,
	},
	{
		ID:          "QUAL-REDUN-004",
		Title:       "Trivial Subquery",
		Description: "Subquery with constant value",
		Fix:         "Inline the constant",
		Impact:      "Unnecessary subquery overhead",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "redundancy",
		Match:       matches(`(?i)\(\s*SELECT\s+[\d'"]+\s*\)`),
	},
	{
		ID:          "QUAL-REDUN-005",
		Title:       "Redundant CAST",
		Description: "CAST to same type",
		Fix:         "Remove CAST",
		Impact:      "Unnecessary type conversion",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "redundancy",
		Match:       matchRedundantCast,
	},
	{
		ID:          "QUAL-REDUN-006",
		Title:       "Unnecessary COALESCE",
		Description: "COALESCE with single argument",
		Fix:         "Remove COALESCE",
		Impact:      "Extra function call",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "redundancy",
		Match:       notFollowedBy(`(?i)COALESCE\s*\(\s*\w+\s*\)`, `^\s*,`),
	},
	{
		ID:          "QUAL-REDUN-007",
		Title:       "Redundant Parentheses",
		Description: "Nested parentheses unnecessarily",
		Fix:         "Simplify expression",
		Impact:      "Readability issue",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "redundancy",
		Match:       matches(`(?i)\(\s*\(\s*SELECT`),
	},
	{
		ID:          "QUAL-REDUN-008",
		Title:       "Duplicate Column in SELECT",
		Description: "Same column selected multiple times",
		Fix:         "Remove duplicates",
		Impact:      "Redundant data transfer",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "redundancy",
		Match:       matchDuplicateSelectColumn,
	},
	{
		ID:          "QUAL-JOIN-001",
		Title:       "Duplicate JOIN",
		Description: "Same table joined multiple times",
		Fix:         "Consolidate JOINs",
		Impact:      "Redundant data processing",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionQuality,
		Category:    "join",
		Match:       matchDuplicateJoin,
	},
	{
		ID:          "QUAL-JOIN-002",
		Title:       "RIGHT JOIN Usage",
		Description: "Less readable than LEFT",
		Fix:         "Rewrite as LEFT JOIN",
		Impact:      "Maintainability",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "join",
		Match:       matches(`(?i)RIGHT\s+JOIN`),
	},
	{
		ID:          "QUAL-STYLE-001",
		Title:       "LIKE without Wildcards",
		Description: "LIKE without wildcards should be =",
		Fix:         "Use = for exact matches",
		Impact:      "Slightly slower than equality check",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "style",
		Match:       matches(`(?i)LIKE\s+["'][^%_]+["']`),
	},
	{
		ID:          "QUAL-STYLE-002",
		Title:       "ORDER BY Ordinal",
		Description: "ORDER BY position number is fragile",
		Fix:         "Use column names explicitly",
		Impact:      "Breaks when SELECT list changes",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "style",
		Match:       matches(`(?i)ORDER\s+BY\s+\d+`),
	},
	{
		ID:          "QUAL-STYLE-003",
		Title:       "Lowercase Keywords",
		Description: "SQL keywords in lowercase",
		Fix:         "Use uppercase for keywords",
		Impact:      "Style inconsistency",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "style",
		Match:       matches(`\b(select|from|where|join|insert|update|delete|create|alter|drop)\b`),
	},
	{
		ID:          "QUAL-STYLE-004",
		Title:       "Mixed Case Identifiers",
		Description: "Table/column names with mixed case",
		Fix:         "Use consistent casing (e.g., snake_case)",
		Impact:      "Portability issues across DBs",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "style",
		Match:       matches(`FROM\s+([a-z]+[A-Z]|[A-Z]+[a-z])\w*`),
	},
	{
		ID:          "QUAL-STYLE-005",
		Title:       "Trailing Whitespace",
		Description: "Unnecessary trailing spaces",
		Fix:         "Trim whitespace",
		Impact:      "Style issue",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "style",
		UseRaw:      true,
		Match:       matches(`(?m) +\r?$`),
	},
	{
		ID:          "QUAL-STYLE-006",
		Title:       "Multiple Spaces",
		Description: "Consecutive spaces in query",
		Fix:         "Normalize spacing",
		Impact:      "Style inconsistency",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "style",
		UseRaw:      true,
		Match:       matches(`\S  +\S`),
	},
	{
		ID:          "QUAL-DOC-001",
		Title:       "TODO Comment",
		Description: "Unresolved TODO/FIXME in comments",
		Fix:         "Resolve or remove",
		Impact:      "Potential unfinished code",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionQuality,
		Category:    "documentation",
		UseRaw:      true,
		Match:       matches(`(?i)--.*\b(TODO|FIXME|HACK|XXX)\b`),
	},
	{
		ID:          "QUAL-DOC-002",
		Title:       "Uncommented Complex Query",
		Description: "Complex query without comments",
		Fix:         "Add explanatory comments",
		Impact:      "Hard to maintain",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "documentation",
		UseRaw:      true,
		Match:       matchUncommentedComplex,
	},
	{
		ID:          "QUAL-HARD-001",
		Title:       "Magic Number",
		Description: "Hardcoded numeric constant",
		Fix:         "Use named constants or parameters",
		Impact:      "Hard to maintain",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "hardcoding",
		Match:       matches(`(?i)WHERE\s+\w+\s*=\s*\d{2,}\b`),
	},
	{
		ID:          "QUAL-HARD-002",
		Title:       "Hardcoded Date",
		Description: "Specific date hardcoded",
		Fix:         "Use dynamic dates or parameters",
		Impact:      "Query becomes outdated",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionQuality,
		Category:    "hardcoding",
		Match:       matches(`['"]20\d{2}-\d{2}-\d{2}['"]`),
	},
	{
		ID:          "QUAL-SUBQ-001",
		Title:       "Deeply Nested Subquery",
		Description: "Excessive nesting",
		Fix:         "Use CTEs",
		Impact:      "Hard to optimize/maintain",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionQuality,
		Category:    "subquery",
		Match:       matches(`(?i)\(\s*SELECT.*\(\s*SELECT.*\(\s*SELECT`),
	},
	{
		ID:          "QUAL-CTE-001",
		Title:       "Unused CTE",
		Description: "CTE defined but not used",
		Fix:         "Remove unused CTE",
		Impact:      "Unnecessary computation",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "cte",
		Match:       matchUnusedCTE,
	},
	{
		ID:          "QUAL-ANTI-001",
		Title:       "EAV Pattern",
		Description: "Entity-attribute-value shape in query",
		Fix:         "Model attributes as real columns",
		Impact:      "Unqueryable data and weak typing",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "anti-pattern",
		Match:       matches(`(?i)attribute.*value|property.*value`),
	},
	{
		ID:          "QUAL-ANTI-002",
		Title:       "God Table",
		Description: "Query against a generic catch-all table",
		Fix:         "Split into purpose-specific tables",
		Impact:      "Contention and unclear ownership",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionQuality,
		Category:    "anti-pattern",
		Match:       matches(`(?i)SELECT.*FROM\s+(data|entity|object|element)\b`),
	},
}
