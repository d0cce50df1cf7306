package cmd

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// extensionsCmd represents the extensions command
var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "Derive the file extension inventory",
	Long: `Aggregates the extension column of the richest table on disk into
extensions_inventory.csv: one row per extension with total and per-source
claimant counts plus a sample language.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		p := newPipeline(cfg, logg)
		if err := p.BuildExtensions(); err != nil {
			logg.Fatal("Extensions inventory failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(extensionsCmd)
}
