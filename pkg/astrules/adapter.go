// Package astrules holds structural rules evaluated against the
// parser backend's view of a statement. They complement the textual
// catalog with checks a regex cannot express.
package astrules

import (
	"github.com/pingcap/tidb/parser/ast"

	"github.com/sqlward/sqlward/pkg/sqlparser"
	"github.com/sqlward/sqlward/pkg/types"
)

// NodeKind selects which structural nodes FindAll enumerates.
type NodeKind string

const (
	NodeTable    NodeKind = "table"
	NodeColumn   NodeKind = "column"
	NodeJoin     NodeKind = "join"
	NodeSubquery NodeKind = "subquery"
	NodeSelect   NodeKind = "select"
)

// Facts is the read-only structural view of one successfully parsed
// statement. Rules consume Facts instead of re-parsing.
type Facts struct {
	res *sqlparser.ParseResult
}

// NewFacts wraps a parse result. res must be non-nil.
func NewFacts(res *sqlparser.ParseResult) *Facts {
	return &Facts{res: res}
}

// Tables returns the referenced table names, deduplicated.
func (f *Facts) Tables() []string {
	return f.res.Tables
}

// Columns returns the referenced column names, deduplicated.
func (f *Facts) Columns() []string {
	return f.res.Columns
}

// StatementKind returns the statement's leading-verb classification.
func (f *Facts) StatementKind() types.StatementKind {
	return f.res.Kind
}

// FindAll enumerates structural nodes of the given kind. Table and
// column nodes are reported by name, once per occurrence; other kinds
// are reported as counters. The result is nil when the backend's AST
// is not available.
func (f *Facts) FindAll(kind NodeKind) []string {
	node, ok := f.res.Node.(ast.Node)
	if !ok {
		return nil
	}
	c := &nodeCollector{kind: kind}
	node.Accept(c)
	return c.found
}

type nodeCollector struct {
	kind  NodeKind
	found []string
}

func (c *nodeCollector) Enter(n ast.Node) (ast.Node, bool) {
	switch v := n.(type) {
	case *ast.TableName:
		if c.kind == NodeTable {
			name := v.Name.O
			if v.Schema.O != "" {
				name = v.Schema.O + "." + name
			}
			c.found = append(c.found, name)
		}
	case *ast.ColumnName:
		if c.kind == NodeColumn {
			c.found = append(c.found, v.Name.O)
		}
	case *ast.Join:
		// Single-table FROM clauses are also modeled as a Join with
		// an empty right side; only count real joins.
		if c.kind == NodeJoin && v.Right != nil {
			c.found = append(c.found, string(NodeJoin))
		}
	case *ast.SubqueryExpr:
		if c.kind == NodeSubquery {
			c.found = append(c.found, string(NodeSubquery))
		}
	case *ast.SelectStmt:
		if c.kind == NodeSelect {
			c.found = append(c.found, string(NodeSelect))
		}
	}
	return n, false
}

func (c *nodeCollector) Leave(n ast.Node) (ast.Node, bool) {
	return n, true
}
