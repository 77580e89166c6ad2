package patterns

import "github.com/sqlward/sqlward/pkg/types"

var complianceDetectors = []Detector{
	{
		ID:          "COMP-PII-001",
		Title:       "Email in Query",
		Description: "Hardcoded email address",
		Fix:         "Parameterize",
		Impact:      "Privacy/maintenance issue",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionCompliance,
		Category:    "pii",
		Match:       matches(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
	},
}

var costDetectors = []Detector{
	{
		ID:          "COST-TYPE-001",
		Title:       "VARCHAR(MAX)",
		Description: "Inefficient for large strings",
		Fix:         "Use TEXT or appropriate size",
		Impact:      "Memory overhead",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionCost,
		Category:    "datatype",
		Match:       matches(`(?i)VARCHAR\s*\(\s*MAX\s*\)|VARCHAR\s*\(\s*\d{4,}\s*\)`),
	},
	{
		ID:          "COST-TYPE-002",
		Title:       "TEXT vs VARCHAR",
		Description: "TEXT may be overkill",
		Fix:         "Use VARCHAR with limit",
		Impact:      "Storage inefficiency",
		Severity:    types.SeverityLow,
		Dimension:   types.DimensionCost,
		Category:    "datatype",
		Match:       matches(`(?i)\bTEXT\b`),
	},
}
