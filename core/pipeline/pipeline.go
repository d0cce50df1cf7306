// Package pipeline orchestrates the master-list build, the augmentation
// passes, and the derived reports over the data directory layout.
package pipeline

import (
	"go.uber.org/zap"

	"lang-atlas/core/fetch"
	"lang-atlas/core/merge"
)

// Pipeline bundles the configuration and clients shared by all stages.
type Pipeline struct {
	Data   Config
	Merge  merge.Config
	Client *fetch.Client
	Logger *zap.Logger
}

// New creates a pipeline from configuration.
func New(data Config, mergeCfg merge.Config, fetchCfg fetch.Config, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		Data:   data,
		Merge:  mergeCfg,
		Client: fetch.NewClient(fetchCfg),
		Logger: logger,
	}
}
