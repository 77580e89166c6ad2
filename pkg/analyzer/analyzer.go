// Package analyzer runs the full analysis pipeline over a SQL input:
// segmentation, normalization, dialect detection, parsing, and rule
// evaluation, aggregated into a single result.
//
// # Quick Start
//
//	a, err := analyzer.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := a.Analyze(ctx, "SELECT * FROM users; DELETE FROM logs")
//	for _, f := range result.Findings {
//	    fmt.Printf("[%s] %s: %s\n", f.Severity, f.RuleID, f.Title)
//	}
//
// Analyze never fails the batch: statements the backend cannot parse
// are recorded as diagnostics and still get textual analysis. Use
// AnalyzeSingle when the caller requires exactly one fully understood
// statement.
package analyzer

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sqlward/sqlward/pkg/astrules"
	"github.com/sqlward/sqlward/pkg/logger"
	"github.com/sqlward/sqlward/pkg/patterns"
	"github.com/sqlward/sqlward/pkg/sqlparser"
	"github.com/sqlward/sqlward/pkg/types"
)

// Analyzer evaluates SQL against the pattern catalog and the
// structural rules. It is safe for concurrent use.
type Analyzer struct {
	opts *options
}

// New creates an Analyzer. Option errors, such as an unknown dialect
// name, are reported here rather than at analysis time.
func New(opts ...Option) (*Analyzer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, errors.Wrap(err, "configure analyzer")
		}
	}
	return &Analyzer{opts: o}, nil
}

// Analyze segments sql and analyzes every statement. Statements run
// on a bounded worker pool; results are keyed by statement index, so
// output order never depends on scheduling. Findings for one
// statement appear in catalog order, textual detectors before
// structural rules.
func (a *Analyzer) Analyze(ctx context.Context, sql string) *types.AnalysisResult {
	segments := sqlparser.Split(sql)

	statements := make([]types.Statement, len(segments))
	findings := make([][]types.Finding, len(segments))
	diagnostics := make([]*types.Diagnostic, len(segments))

	var g errgroup.Group
	g.SetLimit(a.opts.workers)
	for i := range segments {
		i := i
		g.Go(func() error {
			statements[i], findings[i], diagnostics[i] = a.analyzeStatement(ctx, i, segments[i])
			return nil
		})
	}
	// Workers never return errors; failures degrade to diagnostics.
	_ = g.Wait()

	result := &types.AnalysisResult{Statements: statements}
	for i := range segments {
		result.Findings = append(result.Findings, findings[i]...)
		if diagnostics[i] != nil {
			result.Diagnostics = append(result.Diagnostics, *diagnostics[i])
		}
	}
	result.Stats = types.ComputeStats(result.Findings)
	return result
}

// AnalyzeSingle is the strict variant: the input must contain exactly
// one statement and the backend must understand it.
func (a *Analyzer) AnalyzeSingle(ctx context.Context, sql string) (*types.AnalysisResult, error) {
	result := a.Analyze(ctx, sql)
	if n := len(result.Statements); n != 1 {
		return nil, errors.Errorf("expected exactly one statement, got %d", n)
	}
	if len(result.Diagnostics) > 0 {
		return nil, errors.Errorf("statement could not be analyzed: %s", result.Diagnostics[0].Message)
	}
	return result, nil
}

func (a *Analyzer) analyzeStatement(ctx context.Context, index int, seg sqlparser.SingleSQL) (stmt types.Statement, findings []types.Finding, diag *types.Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			a.opts.log.Error("statement analysis panicked", "statement", index, "error", r)
			diag = &types.Diagnostic{
				StatementIndex: index,
				Message:        fmt.Sprintf("analysis panicked: %v", r),
			}
		}
	}()

	loc := types.Location{StatementIndex: index, Line: seg.Line, Column: seg.Column}
	normalized := sqlparser.Normalize(seg.Text)

	dialect := a.opts.dialect
	if dialect == "" {
		dialect = sqlparser.DetectDialect(normalized)
	}

	stmt = types.Statement{
		Raw:        seg.Text,
		Normalized: normalized,
		Dialect:    string(dialect),
		Location:   loc,
		Kind:       types.KindUnknown,
	}

	res, err := a.opts.parser.Parse(ctx, seg.Text, dialect)
	if err != nil {
		a.opts.log.Debug("statement parse failed", "statement", index, logger.Error(err))
		diag = &types.Diagnostic{StatementIndex: index, Message: err.Error()}
	} else {
		stmt.Tables = res.Tables
		stmt.Columns = res.Columns
		stmt.Kind = res.Kind
	}

	findings = patterns.Run(normalized, seg.Text, loc, a.opts.disabled)
	if res != nil {
		findings = append(findings, astrules.Run(astrules.NewFacts(res), seg.Text, loc, a.opts.disabled)...)
	}
	return stmt, findings, diag
}
