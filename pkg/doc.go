// Package pkg provides static SQL analysis functionality for Go applications.
//
// sqlward inspects SQL text for security, performance, reliability,
// compliance, quality, and cost problems without executing anything
// against a database.
//
// # Package Structure
//
// The pkg directory contains several specialized packages:
//
//   - analyzer: High-level API for analyzing SQL (recommended starting point)
//   - sqlparser: Statement segmentation, normalization, dialect detection,
//     and the pluggable parser backend
//   - patterns: The textual detector catalog
//   - astrules: Structural rules evaluated on parsed statements
//   - rules: Rule registry with taxonomy indices and search
//   - types: Core type definitions and data structures
//   - config: Configuration loading and management
//   - reporter: Console and JSON result rendering
//   - logger: Logging setup
//
// # Getting Started
//
// For most use cases, start with the analyzer package:
//
//	import "github.com/sqlward/sqlward/pkg/analyzer"
//
//	func main() {
//	    a, err := analyzer.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    result := a.Analyze(context.Background(), sqlStatements)
//	    // Process result.Findings...
//	}
//
// # Rule Dimensions
//
// Findings are classified along six dimensions:
//
// SECURITY: Injection risks, privilege grants, hardcoded credentials,
// embedded IPs and URLs.
//
// PERFORMANCE: Full scans, non-sargable predicates, cartesian joins,
// deep pagination, oversized IN lists, set-operation misuse,
// procedural anti-patterns.
//
// RELIABILITY: Mutations without WHERE, NULL comparison mistakes,
// float equality, contradictory or tautological logic, unsafe DDL,
// unbounded recursive CTEs, locking pitfalls.
//
// COMPLIANCE: Personal data appearing in query text.
//
// QUALITY: Redundant constructs, style drift, missing documentation,
// schema anti-patterns.
//
// COST: Storage-heavy column types.
//
// # Configuration
//
// Analyzers are configured with functional options:
//
//	a, err := analyzer.New(
//	    analyzer.WithDialect("postgres"),
//	    analyzer.WithDisabledRules("QUAL-DOC-001"),
//	)
//
// File-based configuration is handled by the config package and the
// CLI.
//
// # Custom Rules
//
// Extra rule metadata can be registered into the global registry:
//
//	func init() {
//	    rules.RegisterLoader(func(r *rules.Registry) error {
//	        return r.Register(myRule, false)
//	    })
//	}
//
// # Thread Safety
//
// All public APIs are safe for concurrent use by multiple goroutines.
// Analyzer instances can be reused across multiple analyses.
//
// # Error Handling
//
// Analysis distinguishes between:
//   - Findings (problems in the SQL, returned in AnalysisResult)
//   - Diagnostics (statements the backend could not parse)
//   - System errors (only from strict AnalyzeSingle and construction)
//
// A statement that fails to parse never aborts the batch; textual
// detectors still run on it and the failure is recorded as a
// diagnostic.
//
// # Performance
//
// Analysis supports context cancellation for timeout control:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	result := a.Analyze(ctx, sql)
//
// Statements are analyzed concurrently on a bounded worker pool;
// output order is always by statement index.
//
// # Documentation
//
// Complete documentation and examples:
//   - Package documentation: https://pkg.go.dev/github.com/sqlward/sqlward/pkg
//   - Examples: examples/library-usage/
//   - Main README: README.md
package pkg
