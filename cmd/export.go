package cmd

import (
	"go.uber.org/zap"

	"lang-atlas/core/database"
	"lang-atlas/feature/languages"

	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Materialize the master list in a relational database",
	Long: `Loads the richest derived table and replaces the contents of the
languages table in the configured database (SQLite by default, MySQL for
shared deployments). The swap runs in one transaction.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		p := newPipeline(cfg, logg)
		t, inPath, err := p.LoadRichest()
		if err != nil {
			logg.Fatal("No table to export", zap.Error(err))
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}

		store := languages.NewStore(db)
		if err := store.Migrate(); err != nil {
			logg.Fatal("Migration failed", zap.Error(err))
		}
		if err := store.ReplaceAll(t.Rows); err != nil {
			logg.Fatal("Export failed", zap.Error(err))
		}

		n, err := store.Count()
		if err != nil {
			logg.Fatal("Post-export count failed", zap.Error(err))
		}
		columns, err := database.GetTableColumns(db, languages.LanguageRow{}.TableName())
		if err != nil {
			logg.Warn("Schema inspection failed", zap.Error(err))
		}
		logg.Info("Export complete",
			zap.String("input", inPath),
			zap.String("driver", cfg.Database.Driver),
			zap.Int64("rows", n),
			zap.Int("columns", len(columns)),
		)
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}
