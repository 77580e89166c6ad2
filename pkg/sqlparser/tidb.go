package sqlparser

import (
	"context"
	"strings"

	"github.com/pingcap/tidb/parser"
	"github.com/pingcap/tidb/parser/ast"
	"github.com/pingcap/tidb/parser/format"
	_ "github.com/pingcap/tidb/parser/test_driver"

	"github.com/sqlward/sqlward/pkg/types"
)

// TiDBParser is the default parsing backend, wrapping the TiDB SQL
// parser. Its grammar is MySQL-flavored; statements from other
// dialects parse on a best-effort basis and fall back to ParseFailure.
type TiDBParser struct{}

// NewTiDBParser returns a parser backend safe for concurrent use. A
// fresh underlying parser is created per call because TiDB parser
// instances are not goroutine safe.
func NewTiDBParser() *TiDBParser {
	return &TiDBParser{}
}

// Parse parses a single statement and extracts its structural facts.
func (tp *TiDBParser) Parse(ctx context.Context, sql string, dialect Dialect) (*ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ParseFailure{Reason: err.Error()}
	}

	p := parser.New()
	stmtNodes, _, err := p.Parse(sql, "", "")
	if err != nil {
		return nil, &ParseFailure{Reason: err.Error()}
	}
	if len(stmtNodes) == 0 {
		return nil, &ParseFailure{Reason: "no statement found"}
	}
	node := stmtNodes[0]

	return &ParseResult{
		Tables:     collectTables(node),
		Columns:    collectColumns(node),
		Kind:       statementKind(node),
		Normalized: restore(node, sql),
		Node:       node,
	}, nil
}

// restore renders the AST back to canonical text. If the node cannot
// be restored, the textual normalization is used instead.
func restore(node ast.StmtNode, sql string) string {
	var b strings.Builder
	rc := format.NewRestoreCtx(format.DefaultRestoreFlags, &b)
	if err := node.Restore(rc); err != nil {
		return Normalize(sql)
	}
	return b.String()
}

func statementKind(node ast.StmtNode) types.StatementKind {
	switch node.(type) {
	case *ast.SelectStmt, *ast.SetOprStmt:
		return types.KindSelect
	case *ast.InsertStmt:
		return types.KindInsert
	case *ast.UpdateStmt:
		return types.KindUpdate
	case *ast.DeleteStmt:
		return types.KindDelete
	case *ast.CreateTableStmt, *ast.CreateDatabaseStmt, *ast.CreateIndexStmt, *ast.CreateViewStmt:
		return types.KindCreate
	case *ast.AlterTableStmt, *ast.AlterDatabaseStmt:
		return types.KindAlter
	case *ast.DropTableStmt, *ast.DropDatabaseStmt, *ast.DropIndexStmt:
		return types.KindDrop
	case *ast.TruncateTableStmt:
		return types.KindTruncate
	case *ast.GrantStmt:
		return types.KindGrant
	case *ast.RevokeStmt:
		return types.KindRevoke
	}
	return types.KindUnknown
}

// nameCollector gathers table and column references anywhere in the
// tree, deduplicated, in first-seen order.
type nameCollector struct {
	tables  []string
	columns []string
	seen    map[string]struct{}
}

func (c *nameCollector) Enter(n ast.Node) (ast.Node, bool) {
	switch v := n.(type) {
	case *ast.TableName:
		name := v.Name.O
		if v.Schema.O != "" {
			name = v.Schema.O + "." + name
		}
		c.add("t:"+name, name, &c.tables)
	case *ast.ColumnName:
		name := v.Name.O
		if v.Table.O != "" {
			name = v.Table.O + "." + name
		}
		c.add("c:"+name, name, &c.columns)
	}
	return n, false
}

func (c *nameCollector) Leave(n ast.Node) (ast.Node, bool) {
	return n, true
}

func (c *nameCollector) add(key, name string, dst *[]string) {
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	if _, ok := c.seen[key]; ok {
		return
	}
	c.seen[key] = struct{}{}
	*dst = append(*dst, name)
}

func collectTables(node ast.StmtNode) []string {
	c := &nameCollector{}
	node.Accept(c)
	return c.tables
}

func collectColumns(node ast.StmtNode) []string {
	c := &nameCollector{}
	node.Accept(c)
	return c.columns
}
