package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huangsam/chakra/internal/contract"
)

// writeWithFile opens the configured output (stdout when empty), runs writer
// against it and reports where the data went.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON encodes data with two-space indentation.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader writes the header and then lets writeRows add records.
// The CSV writer is flushed before returning and flush errors are reported.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// createFormatters returns closures for the configured display precision.
// Percentages use the precision as is; weights get one extra digit.
func createFormatters(precision int) (fmtPercent func(float64) string, fmtWeight func(float64) string) {
	fmtPercent = func(fraction float64) string {
		return fmt.Sprintf("%.*f%%", precision, fraction*100)
	}
	fmtWeight = func(v float64) string {
		return fmt.Sprintf("%.*f", precision+1, v)
	}
	return fmtPercent, fmtWeight
}

// formatRaw renders a sample value with full round-trip precision.
func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
