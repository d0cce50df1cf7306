package cmd

import (
	"go.uber.org/zap"

	"lang-atlas/core/pipeline"

	"github.com/spf13/cobra"
)

var buildOpts pipeline.BuildOptions

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the master language list",
	Long: `Assembles language rows from a local PLDB clone, Linguist, Wikipedia and
(optionally) the Esolang wiki, resolves duplicate identities, and writes
languages_master.csv plus aliases.csv into the derived data directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		p := newPipeline(cfg, logg)
		if err := p.Build(cmd.Context(), buildOpts); err != nil {
			logg.Fatal("Build failed", zap.Error(err))
		}
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildOpts.Offline, "offline", false,
		"never touch the network; use existing snapshots or embedded data")
	buildCmd.Flags().BoolVar(&buildOpts.IncludeEsolang, "include-esolang", false,
		"include the Esolang wiki as a source")
	buildCmd.Flags().StringVar(&buildOpts.PLDBDir, "pldb-dir", "",
		"path to a local PLDB clone (overrides configuration)")
	RootCmd.AddCommand(buildCmd)
}
