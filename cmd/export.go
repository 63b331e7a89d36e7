package cmd

import (
	"github.com/huangsam/chakra/core"
	"github.com/huangsam/chakra/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd writes the raw sampled signals for external tooling.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the sampled activation signals as CSV or Parquet.",
	Long: `Write one row per sample containing t and the value of every E_k'(t).

CSV goes to stdout unless --output-file is set. Parquet always needs --output-file.

Examples:
  # Stream CSV into another tool
  chakra export --samples 500 | head

  # Columnar export for notebooks
  chakra export --format parquet --output-file signals.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot export signals", err)
		}
	},
}
