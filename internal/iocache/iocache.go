// Package iocache persists analysis run history to SQL backends.
package iocache

import (
	"sync"

	"github.com/huangsam/chakra/internal/contract"
)

// StoreManager owns the history store for the lifetime of the process.
type StoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	analysis     contract.AnalysisStore
}

var _ contract.StoreManager = &StoreManager{} // Compile-time check

// GetAnalysisStore returns the history store, or nil when tracking is disabled.
func (mgr *StoreManager) GetAnalysisStore() contract.AnalysisStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.analysis
}
