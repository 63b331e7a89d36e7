package schema

import "time"

// AnalysisRunRecord represents a row from the chakra_analysis_runs table.
type AnalysisRunRecord struct {
	AnalysisID    int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	Samples       int32
	DomainStart   float64
	DomainEnd     float64
	TotalWeight   *float64
	ConfigParams  *string
}

// SignalWeightRecord represents a row from the chakra_signal_weights table.
type SignalWeightRecord struct {
	AnalysisID int64
	SignalName string
	Weight     float64
	Influence  float64
}
