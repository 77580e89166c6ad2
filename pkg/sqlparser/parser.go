package sqlparser

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sqlward/sqlward/pkg/types"
)

// ParseResult is the structural view of a single parsed statement.
// Node holds the backend's native AST root and is only meaningful to
// code that knows the backend.
type ParseResult struct {
	Tables     []string
	Columns    []string
	Kind       types.StatementKind
	Normalized string
	Node       any
}

// Parser is the contract for the pluggable parsing backend. A backend
// parses exactly one statement at a time; segmentation happens before
// it is called.
type Parser interface {
	Parse(ctx context.Context, sql string, dialect Dialect) (*ParseResult, error)
}

// ParseFailure is returned when the backend cannot understand a
// statement. The analyzer treats it as a per-statement diagnostic, not
// a batch error.
type ParseFailure struct {
	Reason string
}

func (e *ParseFailure) Error() string {
	return "parse failed: " + e.Reason
}

// IsParseFailure reports whether err is (or wraps) a ParseFailure.
func IsParseFailure(err error) bool {
	var pf *ParseFailure
	return errors.As(err, &pf)
}
