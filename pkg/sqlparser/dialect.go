package sqlparser

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Dialect is the canonical name of a SQL dialect.
type Dialect string

const (
	DialectPostgres   Dialect = "postgres"
	DialectMySQL      Dialect = "mysql"
	DialectSQLite     Dialect = "sqlite"
	DialectTSQL       Dialect = "tsql"
	DialectOracle     Dialect = "oracle"
	DialectBigQuery   Dialect = "bigquery"
	DialectSnowflake  Dialect = "snowflake"
	DialectRedshift   Dialect = "redshift"
	DialectClickHouse Dialect = "clickhouse"
	DialectDuckDB     Dialect = "duckdb"
	DialectTrino      Dialect = "trino"
	DialectSpark      Dialect = "spark"
	DialectHive       Dialect = "hive"
)

// dialectAliases maps every accepted dialect name, including common
// synonyms, to its canonical form.
var dialectAliases = map[string]Dialect{
	"postgres":   DialectPostgres,
	"postgresql": DialectPostgres,
	"pg":         DialectPostgres,
	"mysql":      DialectMySQL,
	"mariadb":    DialectMySQL,
	"sqlite":     DialectSQLite,
	"tsql":       DialectTSQL,
	"mssql":      DialectTSQL,
	"sqlserver":  DialectTSQL,
	"oracle":     DialectOracle,
	"bigquery":   DialectBigQuery,
	"snowflake":  DialectSnowflake,
	"redshift":   DialectRedshift,
	"clickhouse": DialectClickHouse,
	"duckdb":     DialectDuckDB,
	"trino":      DialectTrino,
	"presto":     DialectTrino,
	"spark":      DialectSpark,
	"databricks": DialectSpark,
	"hive":       DialectHive,
}

// ResolveDialect validates a user-supplied dialect name and returns
// its canonical form. The empty string resolves to the empty dialect
// (auto-detect per statement).
func ResolveDialect(name string) (Dialect, error) {
	if name == "" {
		return "", nil
	}
	if d, ok := dialectAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d, nil
	}
	return "", errors.Errorf("unsupported dialect %q", name)
}

// SupportedDialects returns the canonical dialect names in a fixed
// order, for help text and validation messages.
func SupportedDialects() []Dialect {
	return []Dialect{
		DialectPostgres, DialectMySQL, DialectSQLite, DialectTSQL,
		DialectOracle, DialectBigQuery, DialectSnowflake, DialectRedshift,
		DialectClickHouse, DialectDuckDB, DialectTrino, DialectSpark,
		DialectHive,
	}
}

// dialectSignatures are syntax constructs unique enough to hint at a
// dialect. Order matters: when two dialects score the same, the one
// whose signature appears first in this list wins.
var dialectSignatures = []struct {
	dialect Dialect
	pattern *regexp.Regexp
}{
	{DialectPostgres, regexp.MustCompile(`\$\d+`)},
	{DialectPostgres, regexp.MustCompile(`::\s*\w+`)},
	{DialectMySQL, regexp.MustCompile("`[^`.]+`")},
	{DialectTSQL, regexp.MustCompile(`(?i)\bTOP\s+\d+`)},
	{DialectTSQL, regexp.MustCompile(`\[\w+\]`)},
	{DialectOracle, regexp.MustCompile(`(?i)\bROWNUM\b`)},
	{DialectBigQuery, regexp.MustCompile("`[\\w-]+\\.[\\w-]+\\.[\\w-]+`")},
	{DialectSnowflake, regexp.MustCompile(`(?i)\bFLATTEN\s*\(`)},
}

// DetectDialect guesses the dialect of a single statement from syntax
// signatures. It returns the empty dialect when nothing distinctive is
// found.
func DetectDialect(sql string) Dialect {
	scores := make(map[Dialect]int)
	var order []Dialect
	for _, sig := range dialectSignatures {
		if !sig.pattern.MatchString(sql) {
			continue
		}
		if _, seen := scores[sig.dialect]; !seen {
			order = append(order, sig.dialect)
		}
		scores[sig.dialect]++
	}

	var best Dialect
	bestScore := 0
	for _, d := range order {
		if scores[d] > bestScore {
			best = d
			bestScore = scores[d]
		}
	}
	return best
}
