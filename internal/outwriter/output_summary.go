package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSummary outputs the influence summary, dispatching on the configured output format.
func WriteSummary(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	if result == nil {
		return fmt.Errorf("no analysis result to report")
	}
	fmtPercent, fmtWeight := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryJSON(w, result, duration)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, result, fmtWeight)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, result, cfg, fmtPercent, fmtWeight, duration)
		}, "Wrote table")
	}
	return nil
}

// writeSummaryTable prints the human-readable summary.
func writeSummaryTable(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, fmtPercent, fmtWeight func(float64) string, duration time.Duration) error {
	title := "CHAKRA INFLUENCE SUMMARY:"
	if cfg.UseEmojis {
		title = "📋 " + title
	}
	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", 40)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Formatting.AutoFormat = tw.Off
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	table.Header([]string{"#", "Chakra", "Influence", "W_k", "Level", "Share"})

	barWidth := getMaxShareBarWidth(cfg)
	peak := 0.0
	for _, s := range result.Signals {
		peak = math.Max(peak, s.Influence)
	}

	var data [][]string
	for i, s := range result.Signals {
		label := contract.GetPlainLabel(s.Influence)
		if cfg.UseColors {
			label = contract.GetColorLabel(s.Influence)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.Display,
			fmtPercent(s.Influence),
			fmtWeight(s.Weight),
			label,
			shareBar(s.Influence, peak, barWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	balance := "scattered"
	if result.Balance.Resonating {
		balance = "resonating"
	}
	lines := []string{
		fmt.Sprintf("\nTotal integrated energy: %.3f", result.TotalWeight),
		fmt.Sprintf("Dominant: %s", schema.FormatDominant(result.Balance.Dominant, result.Signals)),
		fmt.Sprintf("Balance: variance %.4f vs uniform (%s)", result.Balance.Variance, balance),
		fmt.Sprintf("Analysis completed in %v over %d samples. History backend: %s", duration.Round(time.Millisecond), result.Domain.Samples, cfg.AnalysisBackend),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// shareBar draws a bar proportional to influence relative to the largest one.
func shareBar(influence, peak float64, width int) string {
	if peak <= 0 || width <= 0 {
		return ""
	}
	n := int(math.Round(influence / peak * float64(width)))
	return strings.Repeat("█", max(n, 0))
}

// summaryJSON is the JSON document for the summary command.
type summaryJSON struct {
	*schema.AnalysisResult
	DurationMs int64 `json:"duration_ms"`
}

func writeSummaryJSON(w io.Writer, result *schema.AnalysisResult, duration time.Duration) error {
	return writeJSON(w, summaryJSON{AnalysisResult: result, DurationMs: duration.Milliseconds()})
}

// writeSummaryCSV writes one row per signal. Influence is the raw fraction.
func writeSummaryCSV(w io.Writer, result *schema.AnalysisResult, fmtWeight func(float64) string) error {
	header := []string{"rank", "signal", "chakra", "influence", "weight", "level"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, s := range result.Signals {
			rec := []string{
				strconv.Itoa(i + 1),
				string(s.Name),
				s.Display,
				formatRaw(s.Influence),
				fmtWeight(s.Weight),
				string(s.Level),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
