package patterns

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlward/sqlward/pkg/types"
)

func ruleIDs(findings []types.Finding) []string {
	var ids []string
	for _, f := range findings {
		ids = append(ids, f.RuleID)
	}
	return ids
}

func runOn(sql string) []types.Finding {
	return Run(sql, sql, types.Location{StatementIndex: 0, Line: 1, Column: 1}, nil)
}

func TestCatalogConsistency(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Catalog() {
		require.NotEmpty(t, d.ID)
		require.False(t, seen[d.ID], "duplicate detector id %s", d.ID)
		seen[d.ID] = true
		assert.NotEmpty(t, d.Title, "%s missing title", d.ID)
		assert.NotEmpty(t, d.Description, "%s missing description", d.ID)
		assert.True(t, d.Severity.Valid(), "%s has invalid severity", d.ID)
		assert.True(t, d.Dimension.Valid(), "%s has invalid dimension", d.ID)
		assert.NotEmpty(t, d.Category, "%s missing category", d.ID)
		require.NotNil(t, d.Match, "%s missing match func", d.ID)
	}
	assert.GreaterOrEqual(t, len(Catalog()), 100)
}

func TestSelectStarOnly(t *testing.T) {
	findings := runOn("SELECT * FROM users")
	require.Len(t, findings, 1)
	f := findings[0]
	require.Equal(t, "PERF-SCAN-001", f.RuleID)
	require.Equal(t, types.SeverityMedium, f.Severity)
	require.Equal(t, types.DimensionPerformance, f.Dimension)
	require.Equal(t, "SELECT * FROM users", f.Query)
}

func TestDeleteWithoutWhere(t *testing.T) {
	findings := runOn("DELETE FROM users")
	require.Len(t, findings, 1)
	f := findings[0]
	require.Equal(t, "REL-WHERE-001", f.RuleID)
	require.Equal(t, types.SeverityCritical, f.Severity)
	require.Equal(t, "missing WHERE", f.Category)

	require.Empty(t, runOn("DELETE FROM users WHERE id = 1"))
}

func TestNullComparisonPlusSelectStar(t *testing.T) {
	findings := runOn("SELECT * FROM users WHERE status = NULL")
	require.Len(t, findings, 2)
	ids := ruleIDs(findings)
	require.Contains(t, ids, "PERF-SCAN-001")
	require.Contains(t, ids, "REL-NULL-002")
	for _, f := range findings {
		if f.RuleID == "REL-NULL-002" {
			require.Equal(t, types.SeverityCritical, f.Severity)
		}
	}
}

func TestOffsetThresholdBoundary(t *testing.T) {
	at := runOn(fmt.Sprintf("SELECT id FROM t ORDER BY id LIMIT 10 OFFSET %d", MaxOffsetRows))
	require.NotContains(t, ruleIDs(at), "PERF-PAGE-001")

	over := runOn(fmt.Sprintf("SELECT id FROM t ORDER BY id LIMIT 10 OFFSET %d", MaxOffsetRows+1))
	require.Contains(t, ruleIDs(over), "PERF-PAGE-001")
	for _, f := range over {
		if f.RuleID == "PERF-PAGE-001" {
			require.Contains(t, f.Description, "1001")
		}
	}
}

func TestInListThresholdBoundary(t *testing.T) {
	list := func(n int) string {
		vals := make([]string, n)
		for i := range vals {
			vals[i] = fmt.Sprintf("%d", i)
		}
		return "SELECT id FROM t WHERE id IN (" + strings.Join(vals, ", ") + ")"
	}
	require.NotContains(t, ruleIDs(runOn(list(MaxInListValues))), "PERF-INLIST-001")
	require.Contains(t, ruleIDs(runOn(list(MaxInListValues+1))), "PERF-INLIST-001")
}

func TestRunDeterministic(t *testing.T) {
	sql := "SELECT * FROM users WHERE status = NULL ORDER BY name"
	first := runOn(sql)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, runOn(sql))
	}
}

func TestDisabledDetectorsSkipped(t *testing.T) {
	disabled := map[string]bool{"PERF-SCAN-001": true}
	findings := Run("SELECT * FROM users", "SELECT * FROM users", types.Location{}, disabled)
	require.Empty(t, findings)
}

func TestDetectorSpotChecks(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		rule   string
		expect bool
	}{
		{"update without where", "UPDATE users SET active = 0", "REL-WHERE-001", true},
		{"update with where", "UPDATE users SET active = 0 WHERE id = 1", "REL-WHERE-001", false},
		{"cartesian product", "SELECT a.x, b.y FROM a, b", "PERF-JOIN-001", true},
		{"comma from with where", "SELECT a.x FROM a, b WHERE a.id = b.id", "PERF-JOIN-001", false},
		{"bare union", "SELECT id FROM a UNION SELECT id FROM b", "PERF-SET-001", true},
		{"union all", "SELECT id FROM a UNION ALL SELECT id FROM b", "PERF-SET-001", false},
		{"mixed union", "SELECT id FROM a UNION ALL SELECT id FROM b UNION SELECT id FROM c", "PERF-SET-002", true},
		{"contradictory where", "SELECT id FROM t WHERE x = 1 AND x = 2", "REL-LOGIC-003", true},
		{"consistent where", "SELECT id FROM t WHERE x = 1 AND y = 2", "REL-LOGIC-003", false},
		{"null tautology", "SELECT id FROM t WHERE x IS NOT NULL OR x IS NULL", "REL-LOGIC-004", true},
		{"null contradiction", "SELECT id FROM t WHERE x IS NOT NULL AND x IS NULL", "REL-LOGIC-005", true},
		{"case without else", "SELECT CASE WHEN a THEN 1 WHEN b THEN 2 END FROM t", "REL-LOGIC-006", true},
		{"case with else", "SELECT CASE WHEN a THEN 1 WHEN b THEN 2 ELSE 0 END FROM t", "REL-LOGIC-006", false},
		{"redundant or", "SELECT id FROM t WHERE x = 1 OR x = 1", "QUAL-REDUN-001", true},
		{"redundant alias", "SELECT name AS name FROM t", "QUAL-REDUN-003", true},
		{"honest alias", "SELECT name AS full_name FROM t", "QUAL-REDUN-003", false},
		{"duplicate select column", "SELECT id, name, id FROM t", "QUAL-REDUN-008", true},
		{"duplicate join", "SELECT a.x FROM a JOIN b ON a.id = b.id JOIN b ON a.id = b.id", "QUAL-JOIN-001", true},
		{"distinct joins", "SELECT a.x FROM a JOIN b ON a.id = b.id JOIN c ON a.id = c.id", "QUAL-JOIN-001", false},
		{"truncate without cascade", "TRUNCATE TABLE users", "REL-DDL-003", true},
		{"truncate with cascade", "TRUNCATE TABLE users CASCADE", "REL-DDL-003", false},
		{"drop without if exists", "DROP TABLE users", "REL-DDL-004", true},
		{"drop with if exists", "DROP TABLE IF EXISTS users", "REL-DDL-004", false},
		{"recursive cte no limit", "WITH RECURSIVE r AS (SELECT 1) SELECT x FROM r", "REL-CTE-001", true},
		{"recursive cte with limit", "WITH RECURSIVE r AS (SELECT 1) SELECT x FROM r LIMIT 100", "REL-CTE-001", false},
		{"unused cte", "WITH totals AS (SELECT 1) SELECT id FROM orders", "QUAL-CTE-001", true},
		{"used cte", "WITH totals AS (SELECT 1) SELECT id FROM totals", "QUAL-CTE-001", false},
		{"grant all", "GRANT ALL ON db.* TO 'admin'", "SEC-PRIV-001", true},
		{"wildcard grant", "GRANT SELECT ON db.* TO '%'", "SEC-PRIV-002", true},
		{"hardcoded password", "SELECT id FROM t WHERE password = 'hunter2'", "SEC-CRED-001", true},
		{"hardcoded ip", "SELECT id FROM t WHERE host = '10.0.0.1'", "SEC-HARD-001", true},
		{"email in query", "SELECT id FROM t WHERE email = 'a@example.com'", "COMP-PII-001", true},
		{"leading wildcard", "SELECT id FROM t WHERE name LIKE '%smith'", "PERF-SCAN-002", true},
		{"decimal without precision", "CREATE TABLE p (price DECIMAL)", "REL-TYPE-001", true},
		{"decimal with precision", "CREATE TABLE p (price DECIMAL(10, 2))", "REL-TYPE-001", false},
		{"for update bare", "SELECT id FROM t WHERE id = 1 FOR UPDATE", "REL-LOCK-001", true},
		{"for update skip locked", "SELECT id FROM t WHERE id = 1 FOR UPDATE SKIP LOCKED", "REL-LOCK-001", false},
		{"varchar max", "CREATE TABLE t (body VARCHAR(MAX))", "COST-TYPE-001", true},
		{"order by ordinal", "SELECT id, name FROM t ORDER BY 2", "QUAL-STYLE-002", true},
		{"lowercase keywords", "select id from t", "QUAL-STYLE-003", true},
		{"uppercase keywords", "SELECT id FROM t", "QUAL-STYLE-003", false},
		{"mixed case table", "SELECT id FROM UserAccounts", "QUAL-STYLE-004", true},
		{"force index hint", "SELECT id FROM t FORCE INDEX (idx_a) WHERE a = 1", "PERF-HINT-001", true},
		{"date trunc predicate", "SELECT id FROM t WHERE DATE_TRUNC('day', ts) = '2024-01-01'", "PERF-SARG-008", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := ruleIDs(runOn(tt.sql))
			if tt.expect {
				require.Contains(t, ids, tt.rule)
			} else {
				require.NotContains(t, ids, tt.rule)
			}
		})
	}
}

func TestRawTextDetectors(t *testing.T) {
	loc := types.Location{Line: 1, Column: 1}

	// TODO comments only survive in the raw text; the normalized form
	// has comments stripped.
	raw := "SELECT id FROM t -- TODO: add index"
	normalized := "SELECT id FROM t"
	ids := ruleIDs(Run(normalized, raw, loc, nil))
	require.Contains(t, ids, "QUAL-DOC-001")

	raw = "SELECT a.x FROM a JOIN b ON a.i = b.i JOIN c ON a.i = c.i JOIN d ON a.i = d.i"
	ids = ruleIDs(Run(raw, raw, loc, nil))
	require.Contains(t, ids, "QUAL-DOC-002")

	raw = "SELECT id   FROM t"
	ids = ruleIDs(Run("SELECT id FROM t", raw, loc, nil))
	require.Contains(t, ids, "QUAL-STYLE-006")
}

func TestFindingCarriesLocationAndQuery(t *testing.T) {
	loc := types.Location{StatementIndex: 3, Line: 7, Column: 2}
	raw := "  SELECT *\n  FROM users"
	findings := Run("SELECT * FROM users", raw, loc, nil)
	require.Len(t, findings, 1)
	require.Equal(t, loc, findings[0].Location)
	require.Equal(t, raw, findings[0].Query)
}

func TestFind(t *testing.T) {
	d := Find("PERF-SCAN-001")
	require.NotNil(t, d)
	require.Equal(t, "SELECT * Usage", d.Title)
	require.Nil(t, Find("NOPE-000"))
}
