package cmd

import (
	"github.com/huangsam/chakra/core"
	"github.com/huangsam/chakra/internal/contract"
	"github.com/spf13/cobra"
)

// presetsCmd lists the named influence profiles.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named influence presets and their balance.",
	Long: `Show the built-in weight profiles with their normalized influences,
dominant signals and balance state.

Examples:
  chakra presets
  chakra presets --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePresets(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list presets", err)
		}
	},
}
