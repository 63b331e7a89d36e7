package iocache

import (
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/internal/parquet"
)

// ExportSuffixes are appended to the output prefix of a history export.
const (
	AnalysisRunsSuffix  = ".analysis_runs.parquet"
	SignalWeightsSuffix = ".signal_weights.parquet"
)

// ErrNoHistory is returned when there is nothing to export.
var ErrNoHistory = errors.New("no analysis data found to export")

// ExecuteAnalysisExport writes the stored runs and signal weights of store to
// two Parquet files sharing the outputFile prefix. Progress goes to w.
func ExecuteAnalysisExport(w io.Writer, store contract.AnalysisStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("analysis tracking is disabled; set --analysis-backend to export history")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get analysis status: %w", err)
	}
	if status.TotalRuns == 0 {
		return ErrNoHistory
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Total analysis runs: %d\n", status.TotalRuns)
	_, _ = fmt.Fprintf(w, "Total signal records: %d\n", status.TableSizes[signalWeightsTable])

	analysisRuns, err := store.GetAllAnalysisRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve analysis runs: %w", err)
	}
	signalWeights, err := store.GetAllSignalWeights()
	if err != nil {
		return fmt.Errorf("failed to retrieve signal weights: %w", err)
	}

	parquetRuns := parquet.ConvertAnalysisRunRecords(analysisRuns)
	parquetWeights := parquet.ConvertSignalWeightRecords(signalWeights)

	analysisRunsFile := outputFile + AnalysisRunsSuffix
	if err := parquet.WriteAnalysisRunsParquet(parquetRuns, analysisRunsFile); err != nil {
		return fmt.Errorf("failed to write analysis runs: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d analysis runs to: %s\n", len(parquetRuns), analysisRunsFile)

	signalWeightsFile := outputFile + SignalWeightsSuffix
	if err := parquet.WriteSignalWeightsParquet(parquetWeights, signalWeightsFile); err != nil {
		return fmt.Errorf("failed to write signal weights: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Exported %d signal weight records to: %s\n", len(parquetWeights), signalWeightsFile)

	return nil
}
