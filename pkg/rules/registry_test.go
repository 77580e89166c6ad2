package rules

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlward/sqlward/pkg/types"
)

func sampleRule(id string) Rule {
	return Rule{
		ID:          id,
		Name:        "Sample " + id,
		Description: "sample rule",
		Severity:    types.SeverityMedium,
		Dimension:   types.DimensionPerformance,
		Category:    "sample",
		Enabled:     true,
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(sampleRule("X-001"), false))

	err := r.Register(sampleRule("X-001"), false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")

	replacement := sampleRule("X-001")
	replacement.Severity = types.SeverityHigh
	require.NoError(t, r.Register(replacement, true))

	got, ok := r.Get("X-001")
	require.True(t, ok)
	require.Equal(t, types.SeverityHigh, got.Severity)
}

func TestRegisterValidation(t *testing.T) {
	r := NewRegistry()
	require.Error(t, r.Register(Rule{}, false))

	bad := sampleRule("X-002")
	bad.Severity = "WHATEVER"
	require.Error(t, r.Register(bad, false))

	bad = sampleRule("X-003")
	bad.Dimension = "NOPE"
	require.Error(t, r.Register(bad, false))
}

func TestIndicesStayConsistent(t *testing.T) {
	r := NewRegistry()

	a := sampleRule("A-001")
	a.Dimension = types.DimensionSecurity
	a.Severity = types.SeverityCritical
	a.Category = "injection"
	require.NoError(t, r.Register(a, false))

	b := sampleRule("B-001")
	require.NoError(t, r.Register(b, false))

	require.Len(t, r.GetByDimension(types.DimensionSecurity), 1)
	require.Len(t, r.GetBySeverity(types.SeverityCritical), 1)
	require.Len(t, r.GetByCategory("injection"), 1)

	// Replacing with different taxonomy must move it between buckets.
	a2 := a
	a2.Dimension = types.DimensionReliability
	a2.Severity = types.SeverityLow
	a2.Category = "logic"
	require.NoError(t, r.Register(a2, true))

	require.Empty(t, r.GetByDimension(types.DimensionSecurity))
	require.Empty(t, r.GetBySeverity(types.SeverityCritical))
	require.Empty(t, r.GetByCategory("injection"))
	require.Len(t, r.GetByDimension(types.DimensionReliability), 1)

	removed, ok := r.Unregister("A-001")
	require.True(t, ok)
	require.Equal(t, "A-001", removed.ID)
	require.Empty(t, r.GetByDimension(types.DimensionReliability))
	require.Empty(t, r.GetByCategory("logic"))
}

func TestUnregisterAbsent(t *testing.T) {
	r := NewRegistry()
	removed, ok := r.Unregister("NOPE-000")
	require.False(t, ok)
	require.Zero(t, removed)

	require.NoError(t, r.Register(sampleRule("X-001"), false))
	removed, ok = r.Unregister("X-001")
	require.True(t, ok)
	require.Equal(t, types.SeverityMedium, removed.Severity)

	// A second removal of the same id finds nothing.
	_, ok = r.Unregister("X-001")
	require.False(t, ok)
	require.Zero(t, r.Len())
}

func TestQueryOrderingContract(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"C-003", "A-001", "B-002", "A-002"} {
		require.NoError(t, r.Register(sampleRule(id), false))
	}

	all := r.GetAll()
	var ids []string
	for _, rule := range all {
		ids = append(ids, rule.ID)
	}
	require.True(t, sort.StringsAreSorted(ids))

	prefixed := r.GetByPrefix("A-")
	require.Len(t, prefixed, 2)
	require.Equal(t, "A-001", prefixed[0].ID)
	require.Equal(t, "A-002", prefixed[1].ID)
}

func TestGetByPrefixCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(sampleRule("PERF-001"), false))
	require.NoError(t, r.Register(sampleRule("PERF-002"), false))
	require.NoError(t, r.Register(sampleRule("SEC-001"), false))

	for _, prefix := range []string{"PERF-", "perf-", "Perf-"} {
		prefixed := r.GetByPrefix(prefix)
		require.Len(t, prefixed, 2, "prefix %q", prefix)
		require.Equal(t, "PERF-001", prefixed[0].ID)
		require.Equal(t, "PERF-002", prefixed[1].ID)
	}
	require.Empty(t, r.GetByPrefix("qual-"))
}

func TestSearch(t *testing.T) {
	r := NewRegistry()
	inj := sampleRule("SEC-001")
	inj.Name = "Dynamic SQL"
	inj.Dimension = types.DimensionSecurity
	inj.Severity = types.SeverityCritical
	require.NoError(t, r.Register(inj, false))

	scan := sampleRule("PERF-001")
	scan.Name = "SELECT * Usage"
	scan.Enabled = false
	require.NoError(t, r.Register(scan, false))

	require.Len(t, r.Search("dynamic", SearchFilter{}), 1)
	require.Len(t, r.Search("", SearchFilter{}), 2)
	require.Len(t, r.Search("", SearchFilter{EnabledOnly: true}), 1)
	require.Len(t, r.Search("", SearchFilter{
		Dimensions: []types.Dimension{types.DimensionSecurity},
	}), 1)
	require.Len(t, r.Search("", SearchFilter{
		Severities: []types.Severity{types.SeverityCritical},
	}), 1)
	require.Empty(t, r.Search("no such rule", SearchFilter{}))
}

func TestStatsOmitEmptyBuckets(t *testing.T) {
	r := NewRegistry()
	stats := r.Stats()
	require.Zero(t, stats.Total)
	require.Nil(t, stats.ByDimension)

	require.NoError(t, r.Register(sampleRule("X-001"), false))
	off := sampleRule("X-002")
	off.Enabled = false
	require.NoError(t, r.Register(off, false))

	stats = r.Stats()
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.Enabled)
	require.Equal(t, 1, stats.Disabled)
	require.Equal(t, 2, stats.ByDimension[types.DimensionPerformance])
	_, hasSecurity := stats.ByDimension[types.DimensionSecurity]
	require.False(t, hasSecurity)
}

func TestGlobalBuildsBuiltins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	r := Global()
	require.GreaterOrEqual(t, r.Len(), 100)

	// Built-in catalog must include both textual and structural rules.
	_, ok := r.Get("PERF-SCAN-001")
	require.True(t, ok)
	_, ok = r.Get("SEC-PRIV-003")
	require.True(t, ok)

	// Same instance until Reset.
	require.Same(t, r, Global())
}

func TestLoaderIsolation(t *testing.T) {
	Reset()
	t.Cleanup(func() {
		loaders = nil
		Reset()
	})

	RegisterLoader(func(r *Registry) error {
		return r.Register(sampleRule("PLUGIN-001"), false)
	})
	RegisterLoader(func(r *Registry) error {
		return assert.AnError
	})
	RegisterLoader(func(r *Registry) error {
		return r.Register(sampleRule("PLUGIN-002"), false)
	})

	r := Global()
	_, ok := r.Get("PLUGIN-001")
	require.True(t, ok)
	_, ok = r.Get("PLUGIN-002")
	require.True(t, ok, "loader after a failing one must still run")
}
