// Package rules provides the rule registry: a taxonomy-indexed view
// over every analyzer the engine knows, built-in or plugin-loaded.
package rules

import (
	"github.com/pkg/errors"

	"github.com/sqlward/sqlward/pkg/types"
)

// Rule is the registry's metadata record for one analyzer. Execution
// lives in the pattern catalog and the structural rules; the registry
// answers "what rules exist and how are they classified".
type Rule struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Severity    types.Severity  `json:"severity" yaml:"severity"`
	Dimension   types.Dimension `json:"dimension" yaml:"dimension"`
	Category    string          `json:"category" yaml:"category"`
	Enabled     bool            `json:"enabled" yaml:"enabled"`
}

// Validate reports whether the rule carries the metadata the registry
// requires for registration.
func (r Rule) Validate() error {
	if r.ID == "" {
		return errors.New("rule id must not be empty")
	}
	if !r.Severity.Valid() {
		return errors.Errorf("rule %s: invalid severity %q", r.ID, r.Severity)
	}
	if !r.Dimension.Valid() {
		return errors.Errorf("rule %s: invalid dimension %q", r.ID, r.Dimension)
	}
	return nil
}
