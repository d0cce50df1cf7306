package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"lang-atlas/core/loader"
	"lang-atlas/core/logger"
	"lang-atlas/core/middleware/auth"
	"lang-atlas/core/middleware/rayid"

	"lang-atlas/feature/extensions"
	"lang-atlas/feature/languages"
	"lang-atlas/feature/qa"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the derived dataset over HTTP",
	Long:  `Starts a read-only HTTP API over the derived language dataset.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := bootstrap()
		defer logg.Sync()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Feature registration. The languages feature owns the dataset; the
		// others aggregate over it.
		langs := languages.NewFeature(cfg.Data, logg)
		mgr := loader.NewManager()
		mgr.Register(langs)
		mgr.Register(extensions.NewFeature(langs.Service(), logg))
		mgr.Register(qa.NewFeature(langs.Service(), logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (optional; off when no key is configured)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
