// Package contract provides interfaces and shared utilities for chakra's internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/chakra/schema"
)

// StoreManager defines the interface for reaching the run history store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetAnalysisStore() AnalysisStore
}

// AnalysisStore defines the interface for tracking analysis runs and their signal weights.
type AnalysisStore interface {
	// BeginAnalysis creates a new analysis run and returns its unique ID
	BeginAnalysis(startTime time.Time, domain schema.Domain, configParams map[string]any) (int64, error)

	// EndAnalysis updates the analysis run with completion data
	EndAnalysis(analysisID int64, endTime time.Time, totalWeight float64) error

	// RecordSignalWeight stores the weight and influence of one signal
	RecordSignalWeight(analysisID int64, result schema.SignalResult) error

	// GetStatus returns status information about the analysis store
	GetStatus() (schema.AnalysisStatus, error)

	// GetAllAnalysisRuns returns every stored run, oldest first
	GetAllAnalysisRuns() ([]schema.AnalysisRunRecord, error)

	// GetAllSignalWeights returns every stored signal weight
	GetAllSignalWeights() ([]schema.SignalWeightRecord, error)

	// Close closes the underlying connection
	Close() error
}
