package patterns

import "github.com/sqlward/sqlward/pkg/types"

var securityDetectors = []Detector{
	{
		ID:          "SEC-INJ-001",
		Title:       "Dynamic SQL",
		Description: "EXEC/EXECUTE risk injection",
		Fix:         "Use parameterized queries",
		Impact:      "SQL injection vulnerability",
		Severity:    types.SeverityCritical,
		Dimension:   types.DimensionSecurity,
		Category:    "injection",
		Match:       matches(`(?i)EXEC\s*\(|EXECUTE\s*\(|sp_executesql`),
	},
	{
		ID:          "SEC-INJ-002",
		Title:       "SQL Injection Risk",
		Description: "Concatenation in query",
		Fix:         "Use parameters",
		Impact:      "Security breach",
		Severity:    types.SeverityCritical,
		Dimension:   types.DimensionSecurity,
		Category:    "injection",
		Match:       matches(`(?i)=\s*['"].*\+|CONCAT\s*\(.*['"].*\)`),
	},
	{
		ID:          "SEC-PRIV-001",
		Title:       "GRANT ALL",
		Description: "Overly broad permissions",
		Fix:         "Grant specific privileges",
		Impact:      "Security risk",
		Severity:    types.SeverityCritical,
		Dimension:   types.DimensionSecurity,
		Category:    "privileges",
		Match:       matches(`(?i)GRANT\s+ALL`),
	},
	{
		ID:          "SEC-PRIV-002",
		Title:       "Wildcard Grant Target",
		Description: "Privileges granted to a wildcard host",
		Fix:         "Grant to specific hosts or roles",
		Impact:      "Privileges reachable from anywhere",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionSecurity,
		Category:    "privileges",
		Match:       matches(`(?i)GRANT.*TO\s+['"]%`),
	},
	{
		ID:          "SEC-CRED-001",
		Title:       "Hardcoded Password",
		Description: "Password in plain text",
		Fix:         "Use secrets management",
		Impact:      "Severe security vulnerability",
		Severity:    types.SeverityCritical,
		Dimension:   types.DimensionSecurity,
		Category:    "credentials",
		Match:       matches(`(?i)(password|pwd|pass)\s*=\s*['"][^'"]+['"]`),
	},
	{
		ID:          "SEC-CRED-002",
		Title:       "API Key in Query",
		Description: "Potential API key hardcoded",
		Fix:         "Use secrets",
		Impact:      "Security breach risk",
		Severity:    types.SeverityCritical,
		Dimension:   types.DimensionSecurity,
		Category:    "credentials",
		Match:       matches(`(?i)(api_key|apikey|token)\s*=\s*['"][a-zA-Z0-9]{20,}['"]`),
	},
	{
		ID:          "SEC-HARD-001",
		Title:       "Hardcoded IP",
		Description: "IP address hardcoded in query",
		Fix:         "Use parameters or config",
		Impact:      "Security/maintenance risk",
		Severity:    types.SeverityHigh,
		Dimension:   types.DimensionSecurity,
		Category:    "hardcoding",
		Match:       matches(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`),
	},
	{
		ID:          "SEC-HARD-002",
		Title:       "Hardcoded URL",
		Description: "URL hardcoded in query",
		Fix:         "Use parameters",
		Impact:      "Inflexible and risky",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionSecurity,
		Category:    "hardcoding",
		Match:       matches(`(?i)https?://[^\s'"]+`),
	},
}
