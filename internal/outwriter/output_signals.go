package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/internal/parquet"
	"github.com/huangsam/chakra/schema"
)

// WriteSignals exports the time vector and every signal, one row per sample.
func WriteSignals(series []schema.SignalSeries, cfg *contract.Config) error {
	rows, err := parquet.SamplesFromSeries(series)
	if err != nil {
		return fmt.Errorf("cannot export signals: %w", err)
	}

	switch cfg.ExportFormat {
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet export")
		}
		if err := parquet.WriteSignalSamplesParquet(rows, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet (%d rows) to %s\n", len(rows), cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSignalsCSV(w, rows)
		}, "Wrote CSV")
	}
}

func writeSignalsCSV(w io.Writer, rows []parquet.SignalSample) error {
	return writeCSVWithHeader(w, parquet.SignalColumns, func(cw *csv.Writer) error {
		rec := make([]string, len(parquet.SignalColumns))
		for _, row := range rows {
			for i, v := range row.Values() {
				rec[i] = formatRaw(v)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
