package analyzer

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/sqlward/sqlward/pkg/logger"
	"github.com/sqlward/sqlward/pkg/sqlparser"
)

// Option is a functional option for customizing an Analyzer.
type Option func(*options) error

// options holds the resolved configuration of one Analyzer.
type options struct {
	dialect  sqlparser.Dialect
	parser   sqlparser.Parser
	disabled map[string]bool
	workers  int
	log      logger.Interface
}

func defaultOptions() *options {
	return &options{
		parser:  sqlparser.NewTiDBParser(),
		workers: runtime.GOMAXPROCS(0),
		log:     logger.New(),
	}
}

// WithDialect pins every statement to one dialect instead of
// detecting it per statement. The name is resolved against the
// supported dialect set, aliases included; an unknown name fails
// Analyzer construction.
//
// Example:
//
//	a, err := analyzer.New(analyzer.WithDialect("postgres"))
func WithDialect(name string) Option {
	return func(o *options) error {
		d, err := sqlparser.ResolveDialect(name)
		if err != nil {
			return err
		}
		o.dialect = d
		return nil
	}
}

// WithParser swaps the parsing backend. The backend only supplies
// structural facts; textual detectors run regardless of what it
// understands.
func WithParser(p sqlparser.Parser) Option {
	return func(o *options) error {
		if p == nil {
			return errors.New("parser must not be nil")
		}
		o.parser = p
		return nil
	}
}

// WithDisabledRules skips the given rule ids during analysis. Unknown
// ids are ignored.
func WithDisabledRules(ids ...string) Option {
	return func(o *options) error {
		if o.disabled == nil {
			o.disabled = make(map[string]bool, len(ids))
		}
		for _, id := range ids {
			o.disabled[id] = true
		}
		return nil
	}
}

// WithWorkers caps how many statements are analyzed concurrently.
// Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return errors.Errorf("worker count must be positive, got %d", n)
		}
		o.workers = n
		return nil
	}
}

// WithLogger routes the analyzer's internal logging (parse failures,
// recovered panics) through the given logger.
func WithLogger(l logger.Interface) Option {
	return func(o *options) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		o.log = l
		return nil
	}
}
