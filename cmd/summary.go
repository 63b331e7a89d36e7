package cmd

import (
	"github.com/huangsam/chakra/core"
	"github.com/huangsam/chakra/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd computes the influences and prints them without rendering charts.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the influence summary without rendering charts.",
	Long: `Compute every activation signal, integrate the weights and print the ranked
influences. No PNG files are written, so --output-dir may be absent.

Output formats:
  text  aligned table with colored influence levels (default)
  csv   rank,signal,chakra,influence,weight,level
  json  the full analysis result including balance

Examples:
  # Ranked table in the terminal
  chakra summary

  # Machine-readable result for a wider domain
  chakra summary --end 20 --output json --output-file influences.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot print summary", err)
		}
	},
}
