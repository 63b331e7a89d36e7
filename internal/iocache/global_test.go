package iocache

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/chakra/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobals lets each test run InitStores and CloseStores afresh.
func resetGlobals(t *testing.T) {
	t.Helper()
	initOnce = sync.Once{}
	closeOnce = sync.Once{}
	Manager = &StoreManager{}
}

func TestInitStores(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		resetGlobals(t)
		dbPath := filepath.Join(t.TempDir(), "history.db")

		require.NoError(t, InitStores(schema.SQLiteBackend, dbPath))
		require.NotNil(t, Manager.GetAnalysisStore())

		CloseStores()
		assert.Nil(t, Manager.GetAnalysisStore())
		_, err := os.Stat(dbPath)
		assert.NoError(t, err, "database file should exist")
	})

	t.Run("idempotent", func(t *testing.T) {
		resetGlobals(t)
		dbPath := filepath.Join(t.TempDir(), "history.db")

		require.NoError(t, InitStores(schema.SQLiteBackend, dbPath))
		first := Manager.GetAnalysisStore()
		require.NoError(t, InitStores(schema.SQLiteBackend, dbPath))
		assert.Same(t, first, Manager.GetAnalysisStore())

		CloseStores()
		CloseStores()
	})

	t.Run("none disables tracking", func(t *testing.T) {
		resetGlobals(t)
		require.NoError(t, InitStores(schema.NoneBackend, ""))
		assert.Nil(t, Manager.GetAnalysisStore())
		CloseStores()
	})

	t.Run("empty disables tracking", func(t *testing.T) {
		resetGlobals(t)
		require.NoError(t, InitStores("", ""))
		assert.Nil(t, Manager.GetAnalysisStore())
	})

	t.Run("unreachable file", func(t *testing.T) {
		resetGlobals(t)
		dbPath := filepath.Join(t.TempDir(), "missing", "dir", "history.db")
		err := InitStores(schema.SQLiteBackend, dbPath)
		assert.Error(t, err)
		assert.Nil(t, Manager.GetAnalysisStore())
	})
}

func TestClearAnalysis(t *testing.T) {
	t.Run("sqlite removes file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "history.db")
		store, err := NewAnalysisStore(schema.SQLiteBackend, dbPath)
		require.NoError(t, err)
		_, err = store.BeginAnalysis(time.Now(), testDomain, nil)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		require.NoError(t, ClearAnalysis(schema.SQLiteBackend, dbPath, ""))
		_, err = os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err))

		// Clearing twice is fine
		assert.NoError(t, ClearAnalysis(schema.SQLiteBackend, dbPath, ""))
	})

	t.Run("sqlite requires path", func(t *testing.T) {
		assert.Error(t, ClearAnalysis(schema.SQLiteBackend, "", ""))
	})

	t.Run("none", func(t *testing.T) {
		assert.NoError(t, ClearAnalysis(schema.NoneBackend, "", ""))
	})

	t.Run("unsupported", func(t *testing.T) {
		assert.Error(t, ClearAnalysis(schema.DatabaseBackend("oracle"), "", ""))
	})
}
