// Package parquet provides data structures and functions for exporting chakra
// signals and run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/chakra/schema"
	"github.com/parquet-go/parquet-go"
)

// AnalysisRun represents a single tracked analysis run with metadata.
// This struct maps to the chakra_analysis_runs database table.
type AnalysisRun struct {
	// AnalysisID is the unique identifier for this analysis run
	AnalysisID int64 `parquet:"analysis_id,snappy"`

	// StartTime is when the analysis began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the analysis run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// Samples is the number of points in the time vector
	Samples int32 `parquet:"samples,snappy"`

	// DomainStart and DomainEnd bound the sampled interval
	DomainStart float64 `parquet:"domain_start,snappy"`
	DomainEnd   float64 `parquet:"domain_end,snappy"`

	// TotalWeight is the sum of all signal weights (nullable until the run ends)
	TotalWeight *float64 `parquet:"total_weight,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// SignalWeight is the weight and influence of one signal in one run.
// This struct maps to the chakra_signal_weights database table.
type SignalWeight struct {
	AnalysisID int64   `parquet:"analysis_id,snappy"`
	SignalName string  `parquet:"signal_name,snappy,dict"`
	Weight     float64 `parquet:"weight,snappy"`
	Influence  float64 `parquet:"influence,snappy"`
}

// SignalSample is one row of the signal export: the time value and every signal at it.
type SignalSample struct {
	T          float64 `parquet:"t,snappy"`
	E1Root     float64 `parquet:"e1_root,snappy"`
	E2Sacral   float64 `parquet:"e2_sacral,snappy"`
	E3Solar    float64 `parquet:"e3_solar,snappy"`
	E4Heart    float64 `parquet:"e4_heart,snappy"`
	E5Throat   float64 `parquet:"e5_throat,snappy"`
	E6ThirdEye float64 `parquet:"e6_thirdeye,snappy"`
	E7Crown    float64 `parquet:"e7_crown,snappy"`
}

// SignalColumns lists the export columns in order. CSV export uses the same names.
var SignalColumns = []string{"t", "e1_root", "e2_sacral", "e3_solar", "e4_heart", "e5_throat", "e6_thirdeye", "e7_crown"}

// Values returns the row as a slice ordered like SignalColumns.
func (s SignalSample) Values() []float64 {
	return []float64{s.T, s.E1Root, s.E2Sacral, s.E3Solar, s.E4Heart, s.E5Throat, s.E6ThirdEye, s.E7Crown}
}

// SamplesFromSeries pivots per-signal series into per-sample rows.
// The series must be the seven signals in fixed order over one time vector.
func SamplesFromSeries(series []schema.SignalSeries) ([]SignalSample, error) {
	if len(series) != schema.SignalCount {
		return nil, fmt.Errorf("expected %d signals, got %d", schema.SignalCount, len(series))
	}
	n := len(series[0].Time)
	for i, s := range series {
		if s.Name != schema.AllSignals[i] {
			return nil, fmt.Errorf("signal %d is %s, expected %s", i+1, s.Name, schema.AllSignals[i])
		}
		if len(s.Values) != n || len(s.Time) != n {
			return nil, fmt.Errorf("signal %s has %d samples, expected %d", s.Name, len(s.Values), n)
		}
	}
	rows := make([]SignalSample, n)
	for i := range rows {
		rows[i] = SignalSample{
			T:          series[0].Time[i],
			E1Root:     series[0].Values[i],
			E2Sacral:   series[1].Values[i],
			E3Solar:    series[2].Values[i],
			E4Heart:    series[3].Values[i],
			E5Throat:   series[4].Values[i],
			E6ThirdEye: series[5].Values[i],
			E7Crown:    series[6].Values[i],
		}
	}
	return rows, nil
}

// WriteRows writes rows to w with a schema inferred from the struct tags of T.
func WriteRows[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// writeFile creates outputPath and writes rows to it.
func writeFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteRows(file, data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteSignalWeightsParquet writes a slice of SignalWeight structs to a Parquet file.
func WriteSignalWeightsParquet(data []SignalWeight, outputPath string) error {
	return writeFile(data, outputPath)
}

// WriteSignalSamplesParquet writes the signal export to a Parquet file.
func WriteSignalSamplesParquet(data []SignalSample, outputPath string) error {
	return writeFile(data, outputPath)
}

// ConvertAnalysisRunRecords converts schema.AnalysisRunRecord to AnalysisRun for Parquet export.
func ConvertAnalysisRunRecords(records []schema.AnalysisRunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			AnalysisID:    record.AnalysisID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			Samples:       record.Samples,
			DomainStart:   record.DomainStart,
			DomainEnd:     record.DomainEnd,
			TotalWeight:   record.TotalWeight,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertSignalWeightRecords converts schema.SignalWeightRecord to SignalWeight for Parquet export.
func ConvertSignalWeightRecords(records []schema.SignalWeightRecord) []SignalWeight {
	result := make([]SignalWeight, len(records))
	for i, record := range records {
		result[i] = SignalWeight(record)
	}
	return result
}
