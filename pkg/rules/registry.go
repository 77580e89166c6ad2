package rules

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/sqlward/sqlward/pkg/types"
)

// Registry holds rule metadata behind a primary id index plus
// secondary dimension, category, and severity indices. All query
// methods return rules in lexicographic id order; that ordering is
// part of the contract.
type Registry struct {
	mu          sync.RWMutex
	rules       map[string]Rule
	byDimension map[types.Dimension]map[string]struct{}
	byCategory  map[string]map[string]struct{}
	bySeverity  map[types.Severity]map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:       make(map[string]Rule),
		byDimension: make(map[types.Dimension]map[string]struct{}),
		byCategory:  make(map[string]map[string]struct{}),
		bySeverity:  make(map[types.Severity]map[string]struct{}),
	}
}

// Register adds a rule. Registering an id that already exists is an
// error unless replace is set, in which case the old rule is removed
// from every index first.
func (r *Registry) Register(rule Rule, replace bool) error {
	if err := rule.Validate(); err != nil {
		return errors.Wrap(err, "register rule")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, exists := r.rules[rule.ID]; exists {
		if !replace {
			return errors.Errorf("rule %s already registered", rule.ID)
		}
		r.dropFromIndices(old)
	}

	r.rules[rule.ID] = rule
	addIndex(r.byDimension, rule.Dimension, rule.ID)
	addIndex(r.bySeverity, rule.Severity, rule.ID)
	if rule.Category != "" {
		addIndex(r.byCategory, rule.Category, rule.ID)
	}
	return nil
}

// Unregister removes a rule from the primary map and every secondary
// index, returning the removed rule. The second result is false when
// the id was not registered.
func (r *Registry) Unregister(id string) (Rule, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rule, exists := r.rules[id]
	if !exists {
		return Rule{}, false
	}
	delete(r.rules, id)
	r.dropFromIndices(rule)
	return rule, true
}

func (r *Registry) dropFromIndices(rule Rule) {
	dropIndex(r.byDimension, rule.Dimension, rule.ID)
	dropIndex(r.bySeverity, rule.Severity, rule.ID)
	if rule.Category != "" {
		dropIndex(r.byCategory, rule.Category, rule.ID)
	}
}

func addIndex[K comparable](idx map[K]map[string]struct{}, key K, id string) {
	set, ok := idx[key]
	if !ok {
		set = make(map[string]struct{})
		idx[key] = set
	}
	set[id] = struct{}{}
}

func dropIndex[K comparable](idx map[K]map[string]struct{}, key K, id string) {
	if set, ok := idx[key]; ok {
		delete(set, id)
		if len(set) == 0 {
			delete(idx, key)
		}
	}
}

// Get returns the rule with the given id.
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// SetEnabled flips a rule's enabled flag.
func (r *Registry) SetEnabled(id string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rule, ok := r.rules[id]
	if !ok {
		return errors.Errorf("rule %s not registered", id)
	}
	rule.Enabled = enabled
	r.rules[id] = rule
	return nil
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// GetAll returns every rule in id order.
func (r *Registry) GetAll() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.rules))
	for id := range r.rules {
		ids = append(ids, id)
	}
	return r.collect(ids)
}

// GetByDimension returns the rules of one dimension in id order.
func (r *Registry) GetByDimension(d types.Dimension) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(setIDs(r.byDimension[d]))
}

// GetByCategory returns the rules of one category in id order.
func (r *Registry) GetByCategory(category string) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(setIDs(r.byCategory[category]))
}

// GetBySeverity returns the rules of one severity in id order.
func (r *Registry) GetBySeverity(s types.Severity) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(setIDs(r.bySeverity[s]))
}

// GetByPrefix returns the rules whose id starts with prefix, compared
// case-insensitively, in id order.
func (r *Registry) GetByPrefix(prefix string) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prefix = strings.ToUpper(prefix)
	var ids []string
	for id := range r.rules {
		if strings.HasPrefix(strings.ToUpper(id), prefix) {
			ids = append(ids, id)
		}
	}
	return r.collect(ids)
}

// SearchFilter narrows Search results. Zero value means no
// narrowing.
type SearchFilter struct {
	Dimensions  []types.Dimension
	Severities  []types.Severity
	EnabledOnly bool
}

// Search returns the rules whose id, name, or description contains
// query (case-insensitive), narrowed by the filter, in id order. An
// empty query matches everything.
func (r *Registry) Search(query string, filter SearchFilter) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	var ids []string
	for id, rule := range r.rules {
		if filter.EnabledOnly && !rule.Enabled {
			continue
		}
		if len(filter.Dimensions) > 0 && !containsDimension(filter.Dimensions, rule.Dimension) {
			continue
		}
		if len(filter.Severities) > 0 && !containsSeverity(filter.Severities, rule.Severity) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(rule.ID), query) &&
			!strings.Contains(strings.ToLower(rule.Name), query) &&
			!strings.Contains(strings.ToLower(rule.Description), query) {
			continue
		}
		ids = append(ids, id)
	}
	return r.collect(ids)
}

// RegistryStats summarizes the registered rules. Empty buckets are
// omitted.
type RegistryStats struct {
	Total       int                     `json:"total"`
	Enabled     int                     `json:"enabled"`
	Disabled    int                     `json:"disabled"`
	ByDimension map[types.Dimension]int `json:"by_dimension,omitempty"`
	BySeverity  map[types.Severity]int  `json:"by_severity,omitempty"`
	ByCategory  map[string]int          `json:"by_category,omitempty"`
}

// Stats returns aggregate counts over the registry.
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := RegistryStats{Total: len(r.rules)}
	for _, rule := range r.rules {
		if rule.Enabled {
			stats.Enabled++
		}
		if stats.ByDimension == nil {
			stats.ByDimension = make(map[types.Dimension]int)
			stats.BySeverity = make(map[types.Severity]int)
		}
		stats.ByDimension[rule.Dimension]++
		stats.BySeverity[rule.Severity]++
		if rule.Category != "" {
			if stats.ByCategory == nil {
				stats.ByCategory = make(map[string]int)
			}
			stats.ByCategory[rule.Category]++
		}
	}
	stats.Disabled = stats.Total - stats.Enabled
	return stats
}

// collect resolves ids against the primary map and sorts by id. The
// caller must hold at least a read lock.
func (r *Registry) collect(ids []string) []Rule {
	sort.Strings(ids)
	out := make([]Rule, 0, len(ids))
	for _, id := range ids {
		if rule, ok := r.rules[id]; ok {
			out = append(out, rule)
		}
	}
	return out
}

func setIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

func containsDimension(ds []types.Dimension, d types.Dimension) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

func containsSeverity(ss []types.Severity, s types.Severity) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
