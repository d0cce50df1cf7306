package cmd

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var fetchIncludeEsolang bool

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download raw source snapshots",
	Long: `Downloads the Linguist languages.yml and the Wikipedia (and optionally
Esolang wiki) title lists into the raw data directory, so later builds can
run offline.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		p := newPipeline(cfg, logg)
		if err := p.FetchRaw(cmd.Context(), fetchIncludeEsolang); err != nil {
			logg.Fatal("Fetch failed", zap.Error(err))
		}
	},
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchIncludeEsolang, "include-esolang", false,
		"also snapshot the Esolang wiki title list")
	RootCmd.AddCommand(fetchCmd)
}
