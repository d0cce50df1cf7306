package cmd

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// augmentCmd groups the augmentation passes.
var augmentCmd = &cobra.Command{
	Use:   "augment",
	Short: "Annotate the master list with external registries",
	Long: `Augmentation passes stack extra columns onto the master list. Run them in
order: hyperpolyglot reads the master list, pygments picks up its output,
and rosettacode picks up whichever of the two ran last. Skipping a pass is
fine; running them out of order drops the skipped columns.`,
}

var augmentHyperpolyglotCmd = &cobra.Command{
	Use:   "hyperpolyglot",
	Short: "Annotate rows with Hyperpolyglot registry metadata",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		p := newPipeline(cfg, logg)
		if err := p.AugmentHyperpolyglot(cmd.Context()); err != nil {
			logg.Fatal("Hyperpolyglot augmentation failed", zap.Error(err))
		}
	},
}

var augmentPygmentsCmd = &cobra.Command{
	Use:   "pygments",
	Short: "Annotate rows with Pygments lexer metadata",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		p := newPipeline(cfg, logg)
		if err := p.AugmentPygments(cmd.Context()); err != nil {
			logg.Fatal("Pygments augmentation failed", zap.Error(err))
		}
	},
}

var augmentRosettaCmd = &cobra.Command{
	Use:   "rosettacode",
	Short: "Annotate rows with Rosetta Code category metadata",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		p := newPipeline(cfg, logg)
		if err := p.AugmentRosetta(cmd.Context()); err != nil {
			logg.Fatal("Rosetta Code augmentation failed", zap.Error(err))
		}
	},
}

var augmentAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every augmentation pass in order",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		p := newPipeline(cfg, logg)
		if err := p.AugmentHyperpolyglot(cmd.Context()); err != nil {
			logg.Fatal("Hyperpolyglot augmentation failed", zap.Error(err))
		}
		if err := p.AugmentPygments(cmd.Context()); err != nil {
			logg.Fatal("Pygments augmentation failed", zap.Error(err))
		}
		if err := p.AugmentRosetta(cmd.Context()); err != nil {
			logg.Fatal("Rosetta Code augmentation failed", zap.Error(err))
		}
	},
}

func init() {
	augmentCmd.AddCommand(augmentHyperpolyglotCmd)
	augmentCmd.AddCommand(augmentPygmentsCmd)
	augmentCmd.AddCommand(augmentRosettaCmd)
	augmentCmd.AddCommand(augmentAllCmd)
	RootCmd.AddCommand(augmentCmd)
}
