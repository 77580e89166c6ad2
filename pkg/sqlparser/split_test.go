package sqlparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitBasic(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		want      []SingleSQL
	}{
		{
			name:      "single statement no terminator",
			statement: "SELECT 1",
			want: []SingleSQL{
				{Text: "SELECT 1", Line: 1, Column: 1},
			},
		},
		{
			name:      "two statements",
			statement: "SELECT 1; SELECT 2;",
			want: []SingleSQL{
				{Text: "SELECT 1", Line: 1, Column: 1},
				{Text: " SELECT 2", Line: 1, Column: 11},
			},
		},
		{
			name:      "semicolon inside string literal",
			statement: "SELECT 'a;b'; SELECT 1;",
			want: []SingleSQL{
				{Text: "SELECT 'a;b'", Line: 1, Column: 1},
				{Text: " SELECT 1", Line: 1, Column: 15},
			},
		},
		{
			name:      "semicolon inside double quoted identifier",
			statement: `SELECT ";" FROM t; SELECT 2`,
			want: []SingleSQL{
				{Text: `SELECT ";" FROM t`, Line: 1, Column: 1},
				{Text: " SELECT 2", Line: 1, Column: 20},
			},
		},
		{
			name:      "semicolon inside backtick identifier",
			statement: "SELECT `a;b` FROM t",
			want: []SingleSQL{
				{Text: "SELECT `a;b` FROM t", Line: 1, Column: 1},
			},
		},
		{
			name:      "semicolon inside line comment",
			statement: "SELECT 1 -- trailing; note\n; SELECT 2",
			want: []SingleSQL{
				{Text: "SELECT 1 -- trailing; note\n", Line: 1, Column: 1},
				{Text: " SELECT 2", Line: 2, Column: 3},
			},
		},
		{
			name:      "semicolon inside block comment",
			statement: "SELECT /* a;b */ 1; SELECT 2",
			want: []SingleSQL{
				{Text: "SELECT /* a;b */ 1", Line: 1, Column: 1},
				{Text: " SELECT 2", Line: 1, Column: 21},
			},
		},
		{
			name:      "escaped quote inside literal",
			statement: `SELECT 'it\'s; fine'; SELECT 2`,
			want: []SingleSQL{
				{Text: `SELECT 'it\'s; fine'`, Line: 1, Column: 1},
				{Text: " SELECT 2", Line: 1, Column: 23},
			},
		},
		{
			name:      "empty segments skipped",
			statement: ";;  ;SELECT 1;;",
			want: []SingleSQL{
				{Text: "SELECT 1", Line: 1, Column: 6},
			},
		},
		{
			name:      "multiline location tracking",
			statement: "SELECT 1;\n\n  UPDATE t SET a = 1;",
			want: []SingleSQL{
				{Text: "SELECT 1", Line: 1, Column: 1},
				{Text: "\n\n  UPDATE t SET a = 1", Line: 3, Column: 3},
			},
		},
		{
			name:      "whitespace only input",
			statement: "  \n\t  ",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.statement)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSplitUnterminatedQuoteFallsBack(t *testing.T) {
	// The first statement scans cleanly; the unterminated literal in
	// the second degrades that region to a naive split.
	got := Split("SELECT 1; SELECT 'oops; SELECT 2")
	require.Len(t, got, 3)
	require.Equal(t, "SELECT 1", got[0].Text)
	require.Equal(t, " SELECT 'oops", got[1].Text)
	require.Equal(t, " SELECT 2", got[2].Text)
}

func TestSplitRoundTrip(t *testing.T) {
	input := "SELECT 'a;b' FROM t;\nUPDATE t SET a = 1 WHERE id = 2;\n-- done\nDELETE FROM t WHERE id = 3"
	got := Split(input)
	require.Len(t, got, 3)

	var parts []string
	for _, s := range got {
		parts = append(parts, s.Text)
	}
	require.Equal(t, strings.ReplaceAll(input, ";", "|"),
		strings.ReplaceAll(strings.Join(parts, "|"), ";", "|"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		want      string
	}{
		{
			name:      "collapses whitespace",
			statement: "SELECT   *\n\tFROM   users",
			want:      "SELECT * FROM users",
		},
		{
			name:      "strips line comment",
			statement: "SELECT * FROM users -- all of them",
			want:      "SELECT * FROM users",
		},
		{
			name:      "strips block comment",
			statement: "SELECT /* hint */ id FROM users",
			want:      "SELECT id FROM users",
		},
		{
			name:      "keeps comment markers inside literals",
			statement: "SELECT '--not a comment' FROM t",
			want:      "SELECT '--not a comment' FROM t",
		},
		{
			name:      "keeps block markers inside literals",
			statement: "SELECT '/* kept */' FROM t",
			want:      "SELECT '/* kept */' FROM t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.statement)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, Normalize(got), "Normalize must be idempotent")
		})
	}
}
