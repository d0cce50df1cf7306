package cmd

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// qaCmd represents the qa command
var qaCmd = &cobra.Command{
	Use:   "qa",
	Short: "Check the derived tables for integrity and coverage",
	Long: `Reports row counts, source and field coverage, and merge candidates, and
fails when a hard invariant is broken: duplicate lang_ids, empty canonical
names, or malformed extension tokens.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		statsOnly, _ := cmd.Flags().GetBool("stats-only")
		p := newPipeline(cfg, logg)
		if err := p.RunQA(statsOnly); err != nil {
			logg.Fatal("QA failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(qaCmd)
	qaCmd.Flags().Bool("stats-only", false, "Report counters only, skipping per-item peeks")
}
