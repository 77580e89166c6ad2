package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityOrdering(t *testing.T) {
	for i := 1; i < len(Severities); i++ {
		assert.Greater(t, Severities[i].Rank(), Severities[i-1].Rank())
	}
	assert.Zero(t, Severity("BOGUS").Rank())
	assert.False(t, Severity("BOGUS").Valid())
	assert.False(t, Dimension("BOGUS").Valid())
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Zero(t, stats.Total)
	assert.Nil(t, stats.BySeverity)

	stats = ComputeStats([]Finding{
		{Severity: SeverityHigh, Dimension: DimensionSecurity},
		{Severity: SeverityHigh, Dimension: DimensionPerformance},
		{Severity: SeverityLow, Dimension: DimensionPerformance},
	})
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.BySeverity[SeverityHigh])
	assert.Equal(t, 2, stats.ByDimension[DimensionPerformance])
	_, hasCritical := stats.BySeverity[SeverityCritical]
	assert.False(t, hasCritical)
}

func TestHasSeverityAtLeast(t *testing.T) {
	r := &AnalysisResult{Findings: []Finding{{Severity: SeverityMedium}}}
	assert.True(t, r.HasSeverityAtLeast(SeverityLow))
	assert.True(t, r.HasSeverityAtLeast(SeverityMedium))
	assert.False(t, r.HasSeverityAtLeast(SeverityHigh))
	assert.False(t, (&AnalysisResult{}).HasSeverityAtLeast(SeverityInfo))
}

func TestAnalysisResultJSONSchema(t *testing.T) {
	data, err := json.Marshal(&AnalysisResult{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []any{}, decoded["statements"])
	assert.Equal(t, []any{}, decoded["findings"])
	_, hasDiagnostics := decoded["diagnostics"]
	assert.False(t, hasDiagnostics, "empty diagnostics stay off the wire")
}
