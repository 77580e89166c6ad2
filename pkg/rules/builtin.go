package rules

import (
	"log/slog"
	"sync"

	"github.com/sqlward/sqlward/pkg/astrules"
	"github.com/sqlward/sqlward/pkg/patterns"
)

// Loader registers extra rules into a registry. Loaders run when the
// global registry is first built; a failing loader is logged and
// skipped without affecting the others.
type Loader func(*Registry) error

var (
	globalMu sync.Mutex
	global   *Registry
	loaders  []Loader
)

// RegisterLoader queues a plugin loader for the global registry. If
// the global registry was already built, the loader applies on the
// next Reset.
func RegisterLoader(l Loader) {
	globalMu.Lock()
	defer globalMu.Unlock()
	loaders = append(loaders, l)
}

// Global returns the process-wide registry, building it on first use
// from the built-in catalog plus any registered loaders.
func Global() *Registry {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = build(loaders)
	}
	return global
}

// Reset discards the global registry so the next Global call rebuilds
// it. Intended for tests and plugin reloads.
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = nil
}

func build(loaders []Loader) *Registry {
	r := NewRegistry()
	LoadBuiltins(r)
	for _, load := range loaders {
		if err := load(r); err != nil {
			slog.Warn("rule loader failed, skipping", "error", err)
		}
	}
	return r
}

// LoadBuiltins registers every built-in textual detector and
// structural rule. Built-in metadata is assumed valid; a registration
// failure here is a programming error.
func LoadBuiltins(r *Registry) {
	for _, d := range patterns.Catalog() {
		rule := Rule{
			ID:          d.ID,
			Name:        d.Title,
			Description: d.Description,
			Severity:    d.Severity,
			Dimension:   d.Dimension,
			Category:    d.Category,
			Enabled:     true,
		}
		if err := r.Register(rule, false); err != nil {
			panic(err)
		}
	}
	for _, a := range astrules.Rules {
		rule := Rule{
			ID:          a.ID,
			Name:        a.Title,
			Description: a.Description,
			Severity:    a.Severity,
			Dimension:   a.Dimension,
			Category:    a.Category,
			Enabled:     true,
		}
		if err := r.Register(rule, false); err != nil {
			panic(err)
		}
	}
}
