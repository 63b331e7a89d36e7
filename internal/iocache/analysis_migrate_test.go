package iocache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/chakra/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateAnalysis_NoneBackend(t *testing.T) {
	err := MigrateAnalysis(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrateAnalysis_UnsupportedBackend(t *testing.T) {
	err := MigrateAnalysis(schema.DatabaseBackend("oracle"), "", -1)
	assert.Error(t, err)
}

func TestMigrationsEmbedded(t *testing.T) {
	for _, backend := range []schema.DatabaseBackend{schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend} {
		t.Run(string(backend), func(t *testing.T) {
			dir, err := migrationsDir(backend)
			require.NoError(t, err)
			entries, err := migrationsFS.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 6, "three up/down pairs")
		})
	}
}

func TestMigrateAnalysis_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_migration.db")

	require.NoError(t, MigrateAnalysis(schema.SQLiteBackend, dbPath, -1))
	_, err := os.Stat(dbPath)
	assert.NoError(t, err)

	// Already at latest
	assert.NoError(t, MigrateAnalysis(schema.SQLiteBackend, dbPath, -1))

	assert.NoError(t, MigrateAnalysis(schema.SQLiteBackend, dbPath, 1))
	assert.NoError(t, MigrateAnalysis(schema.SQLiteBackend, dbPath, 0))
	assert.NoError(t, MigrateAnalysis(schema.SQLiteBackend, dbPath, 2))
}

func TestMigrateAnalysis_CompatibleWithStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrated.db")
	require.NoError(t, MigrateAnalysis(schema.SQLiteBackend, dbPath, -1))

	store, err := NewAnalysisStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	id, err := store.BeginAnalysis(time.Now(), testDomain, nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordSignalWeight(id, sampleResults()[0]))
	require.NoError(t, store.EndAnalysis(id, time.Now(), 1))
}
