package iocache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/chakra/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDomain = schema.Domain{Samples: 1000, Start: 0, End: 10, Step: 10.0 / 999}

func sampleResults() []schema.SignalResult {
	results := make([]schema.SignalResult, len(schema.AllSignals))
	for i, name := range schema.AllSignals {
		results[i] = schema.SignalResult{
			Name:      name,
			Weight:    float64(i + 1),
			Influence: float64(i+1) / 28,
		}
	}
	return results
}

func TestAnalysisStore_NoneBackend(t *testing.T) {
	store, err := NewAnalysisStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	analysisID, err := store.BeginAnalysis(time.Now(), testDomain, map[string]any{"test": "value"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), analysisID)

	assert.NoError(t, store.EndAnalysis(1, time.Now(), 10))
	assert.NoError(t, store.RecordSignalWeight(1, schema.SignalResult{Name: schema.RootSignal}))

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, "none", status.Backend)

	runs, err := store.GetAllAnalysisRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)
	weights, err := store.GetAllSignalWeights()
	assert.NoError(t, err)
	assert.Empty(t, weights)

	assert.NoError(t, store.Close())
}

func TestAnalysisStore_UnsupportedBackend(t *testing.T) {
	_, err := NewAnalysisStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestAnalysisStore_SQLite(t *testing.T) {
	store, err := NewAnalysisStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	startTime := time.Now().Add(-1500 * time.Millisecond)
	analysisID, err := store.BeginAnalysis(startTime, testDomain, map[string]any{"samples": 1000, "dpi": 300})
	require.NoError(t, err)
	assert.Greater(t, analysisID, int64(0))

	// A run that has begun but not ended has nullable columns unset.
	runs, err := store.GetAllAnalysisRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].EndTime)
	assert.Nil(t, runs[0].RunDurationMs)
	assert.Nil(t, runs[0].TotalWeight)

	for _, r := range sampleResults() {
		require.NoError(t, store.RecordSignalWeight(analysisID, r))
	}
	require.NoError(t, store.EndAnalysis(analysisID, startTime.Add(1500*time.Millisecond), 28))

	runs, err = store.GetAllAnalysisRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, analysisID, run.AnalysisID)
	assert.Equal(t, int32(1000), run.Samples)
	assert.Equal(t, 0.0, run.DomainStart)
	assert.Equal(t, 10.0, run.DomainEnd)
	assert.True(t, startTime.Equal(run.StartTime))
	require.NotNil(t, run.EndTime)
	require.NotNil(t, run.RunDurationMs)
	assert.Equal(t, int32(1500), *run.RunDurationMs)
	require.NotNil(t, run.TotalWeight)
	assert.Equal(t, 28.0, *run.TotalWeight)
	require.NotNil(t, run.ConfigParams)
	assert.JSONEq(t, `{"samples":1000,"dpi":300}`, *run.ConfigParams)

	weights, err := store.GetAllSignalWeights()
	require.NoError(t, err)
	require.Len(t, weights, schema.SignalCount)
	assert.Equal(t, string(schema.RootSignal), weights[0].SignalName)
	assert.Equal(t, 1.0, weights[0].Weight)
	assert.Equal(t, string(schema.CrownSignal), weights[6].SignalName)
	assert.InDelta(t, 0.25, weights[6].Influence, 1e-12)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, analysisID, status.LastRunID)
	assert.True(t, startTime.Equal(status.LastRunTime))
	assert.True(t, startTime.Equal(status.OldestRunTime))
	assert.Equal(t, int64(1), status.TableSizes[analysisRunsTable])
	assert.Equal(t, int64(schema.SignalCount), status.TableSizes[signalWeightsTable])
}

func TestAnalysisStore_DuplicateSignalRejected(t *testing.T) {
	store, err := NewAnalysisStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	id, err := store.BeginAnalysis(time.Now(), testDomain, nil)
	require.NoError(t, err)
	r := schema.SignalResult{Name: schema.HeartSignal, Weight: 1, Influence: 1}
	require.NoError(t, store.RecordSignalWeight(id, r))
	assert.Error(t, store.RecordSignalWeight(id, r))
}

func TestAnalysisStore_EndUnknownRun(t *testing.T) {
	store, err := NewAnalysisStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	err = store.EndAnalysis(42, time.Now(), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "analysis 42")
}

func TestAnalysisStore_MultipleRunsPersist(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	store, err := NewAnalysisStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i := range 3 {
		id, err := store.BeginAnalysis(base.Add(time.Duration(i)*time.Hour), testDomain, nil)
		require.NoError(t, err)
		require.NoError(t, store.EndAnalysis(id, base.Add(time.Duration(i)*time.Hour+time.Second), 5))
	}
	require.NoError(t, store.Close())

	reopened, err := NewAnalysisStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	status, err := reopened.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 3, status.TotalRuns)
	assert.Equal(t, int64(3), status.LastRunID)
	assert.True(t, base.Equal(status.OldestRunTime))
	assert.True(t, base.Add(2*time.Hour).Equal(status.LastRunTime))

	runs, err := reopened.GetAllAnalysisRuns()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i, run := range runs {
		assert.Equal(t, int64(i+1), run.AnalysisID)
		require.NotNil(t, run.RunDurationMs)
		assert.Equal(t, int32(1000), *run.RunDurationMs)
	}
}

func TestSQLHelpers(t *testing.T) {
	assert.Equal(t, "?, ?, ?", placeholders(schema.SQLiteBackend, 1, 3))
	assert.Equal(t, "?, ?", placeholders(schema.MySQLBackend, 1, 2))
	assert.Equal(t, "$2, $3", placeholders(schema.PostgreSQLBackend, 2, 2))

	assert.Equal(t, "`runs`", quoteTableName("runs", schema.MySQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.PostgreSQLBackend))
	assert.Equal(t, `"runs"`, quoteTableName("runs", schema.SQLiteBackend))

	assert.NoError(t, validateTableName(analysisRunsTable))
	assert.Error(t, validateTableName(""))
	assert.Error(t, validateTableName("runs; DROP TABLE x"))

	for _, backend := range []schema.DatabaseBackend{schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend} {
		_, err := driverName(backend)
		assert.NoError(t, err)
	}
	_, err := driverName(schema.NoneBackend)
	assert.Error(t, err)
}
