package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WritePresets prints every named preset with its balance metrics.
func WritePresets(reports []schema.PresetReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, reports)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePresetsCSV(w, reports)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePresetsText(w, reports, cfg)
		}, "Wrote text")
	}
}

// formatPresetWeights renders weights as whole percents in signal order, e.g. "14/14/14/16/14/14/14".
func formatPresetWeights(weights []float64) string {
	parts := make([]string, len(weights))
	for i, v := range weights {
		parts[i] = strconv.FormatFloat(v*100, 'f', 0, 64)
	}
	return strings.Join(parts, "/")
}

func formatDominantNames(names []schema.SignalName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = schema.MustInfo(n).Display
	}
	return strings.Join(parts, ", ")
}

func writePresetsText(w io.Writer, reports []schema.PresetReport, cfg *contract.Config) error {
	title := "Chakra Influence Presets"
	if cfg.UseEmojis {
		title = "🪷 " + title
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("=", len("Chakra Influence Presets"))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Weights are percents in order %s.\n\n", strings.Join(schema.DisplayNames(), "/")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Preset", "Description", "Weights", "Variance", "Resonating", "Dominant"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, r := range reports {
		resonating := "no"
		if r.Balance.Resonating {
			resonating = "yes"
		}
		data = append(data, []string{
			r.Name,
			r.Description,
			formatPresetWeights(r.Weights),
			fmt.Sprintf("%.4f", r.Balance.Variance),
			resonating,
			formatDominantNames(r.Balance.Dominant),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writePresetsCSV(w io.Writer, reports []schema.PresetReport) error {
	header := []string{"key", "name", "description"}
	for _, name := range schema.AllSignals {
		header = append(header, strings.ToLower(string(name)))
	}
	header = append(header, "variance", "resonating", "dominant")

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range reports {
			rec := []string{r.Key, r.Name, r.Description}
			for _, v := range r.Weights {
				rec = append(rec, formatRaw(v))
			}
			dominant := make([]string, len(r.Balance.Dominant))
			for i, d := range r.Balance.Dominant {
				dominant[i] = string(d)
			}
			rec = append(rec,
				formatRaw(r.Balance.Variance),
				strconv.FormatBool(r.Balance.Resonating),
				strings.Join(dominant, "|"),
			)
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
