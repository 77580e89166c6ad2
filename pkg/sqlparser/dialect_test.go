package sqlparser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		want      Dialect
	}{
		{
			name:      "postgres placeholder",
			statement: "SELECT * FROM users WHERE id = $1",
			want:      DialectPostgres,
		},
		{
			name:      "postgres cast",
			statement: "SELECT created_at::date FROM orders",
			want:      DialectPostgres,
		},
		{
			name:      "mysql backticks",
			statement: "SELECT `name` FROM `users`",
			want:      DialectMySQL,
		},
		{
			name:      "tsql top",
			statement: "SELECT TOP 10 * FROM users",
			want:      DialectTSQL,
		},
		{
			name:      "tsql bracket identifiers",
			statement: "SELECT [name] FROM [users]",
			want:      DialectTSQL,
		},
		{
			name:      "oracle rownum",
			statement: "SELECT * FROM users WHERE ROWNUM <= 10",
			want:      DialectOracle,
		},
		{
			name:      "bigquery qualified table",
			statement: "SELECT * FROM `proj.dataset.users`",
			want:      DialectBigQuery,
		},
		{
			name:      "snowflake flatten",
			statement: "SELECT value FROM t, LATERAL FLATTEN(input => t.arr)",
			want:      DialectSnowflake,
		},
		{
			name:      "no signature",
			statement: "SELECT id FROM users WHERE id = 1",
			want:      "",
		},
		{
			name:      "two postgres hits beat one mysql hit",
			statement: "SELECT `a`, b::int FROM t WHERE id = $1",
			want:      DialectPostgres,
		},
		{
			name:      "tie broken by signature order",
			statement: "SELECT `a` FROM t WHERE id = $1",
			want:      DialectPostgres,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetectDialect(tt.statement))
		})
	}
}

func TestResolveDialect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Dialect
		wantErr bool
	}{
		{name: "canonical", input: "postgres", want: DialectPostgres},
		{name: "alias postgresql", input: "postgresql", want: DialectPostgres},
		{name: "alias mariadb", input: "mariadb", want: DialectMySQL},
		{name: "alias mssql", input: "mssql", want: DialectTSQL},
		{name: "alias presto", input: "presto", want: DialectTrino},
		{name: "case insensitive", input: "MySQL", want: DialectMySQL},
		{name: "surrounding space", input: " sqlite ", want: DialectSQLite},
		{name: "empty means auto", input: "", want: ""},
		{name: "unknown errors", input: "dbase", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDialect(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSupportedDialectsAllResolve(t *testing.T) {
	for _, d := range SupportedDialects() {
		got, err := ResolveDialect(string(d))
		require.NoError(t, err)
		require.Equal(t, d, got)
	}
}
