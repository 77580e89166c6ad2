package sqlparser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlward/sqlward/pkg/types"
)

func TestTiDBParserFacts(t *testing.T) {
	tests := []struct {
		name        string
		statement   string
		wantKind    types.StatementKind
		wantTables  []string
		wantColumns []string
	}{
		{
			name:        "select with join",
			statement:   "SELECT u.id, o.total FROM users u JOIN orders o ON u.id = o.user_id",
			wantKind:    types.KindSelect,
			wantTables:  []string{"users", "orders"},
			wantColumns: []string{"u.id", "o.total", "o.user_id"},
		},
		{
			name:       "update",
			statement:  "UPDATE users SET active = 0 WHERE id = 1",
			wantKind:   types.KindUpdate,
			wantTables: []string{"users"},
		},
		{
			name:       "delete",
			statement:  "DELETE FROM users",
			wantKind:   types.KindDelete,
			wantTables: []string{"users"},
		},
		{
			name:       "insert",
			statement:  "INSERT INTO users (id, name) VALUES (1, 'a')",
			wantKind:   types.KindInsert,
			wantTables: []string{"users"},
		},
		{
			name:       "create table",
			statement:  "CREATE TABLE t (id INT PRIMARY KEY)",
			wantKind:   types.KindCreate,
			wantTables: []string{"t"},
		},
		{
			name:       "drop table",
			statement:  "DROP TABLE t",
			wantKind:   types.KindDrop,
			wantTables: []string{"t"},
		},
		{
			name:       "truncate",
			statement:  "TRUNCATE TABLE t",
			wantKind:   types.KindTruncate,
			wantTables: []string{"t"},
		},
		{
			name:      "grant",
			statement: "GRANT SELECT ON db.* TO 'reader'@'%'",
			wantKind:  types.KindGrant,
		},
		{
			name:       "schema qualified table",
			statement:  "SELECT * FROM shop.orders",
			wantKind:   types.KindSelect,
			wantTables: []string{"shop.orders"},
		},
		{
			name:       "union",
			statement:  "SELECT id FROM a UNION SELECT id FROM b",
			wantKind:   types.KindSelect,
			wantTables: []string{"a", "b"},
		},
	}

	p := NewTiDBParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Parse(context.Background(), tt.statement, "")
			require.NoError(t, err)
			require.Equal(t, tt.wantKind, res.Kind)
			if tt.wantTables != nil {
				require.Equal(t, tt.wantTables, res.Tables)
			}
			if tt.wantColumns != nil {
				require.ElementsMatch(t, tt.wantColumns, res.Columns)
			}
			require.NotEmpty(t, res.Normalized)
			require.NotNil(t, res.Node)
		})
	}
}

func TestTiDBParserFailure(t *testing.T) {
	p := NewTiDBParser()
	_, err := p.Parse(context.Background(), "SELEKT * FROM users", "")
	require.Error(t, err)
	require.True(t, IsParseFailure(err))
}

func TestTiDBParserCancelledContext(t *testing.T) {
	p := NewTiDBParser()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Parse(ctx, "SELECT 1", "")
	require.Error(t, err)
	require.True(t, IsParseFailure(err))
}

func TestTiDBParserDeduplicatesTables(t *testing.T) {
	p := NewTiDBParser()
	res, err := p.Parse(context.Background(), "SELECT a.id FROM t a JOIN t b ON a.id = b.id", "")
	require.NoError(t, err)
	require.Equal(t, []string{"t"}, res.Tables)
}
