package cmd

import (
	"log"

	"lang-atlas/core/config"
	"lang-atlas/core/logger"
	"lang-atlas/core/pipeline"

	"go.uber.org/zap"
)

// bootstrap loads the configuration and initializes the logger. Failures at
// this point are fatal: nothing can run without them.
func bootstrap() (*config.Config, *zap.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logg)
	return cfg, logg
}

// newPipeline wires the pipeline with the loaded configuration.
func newPipeline(cfg *config.Config, logg *zap.Logger) *pipeline.Pipeline {
	return pipeline.New(cfg.Data, cfg.Merge, cfg.Fetch, logg)
}
