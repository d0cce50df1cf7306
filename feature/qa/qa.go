// Package qa serves dataset integrity and coverage statistics over HTTP,
// computed on demand from the languages feature's loaded dataset.
package qa

import (
	"lang-atlas/core/pipeline"

	"lang-atlas/feature/languages"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	languages *languages.Service
	logger    *zap.Logger
}

// NewFeature creates the qa feature on top of the languages service.
func NewFeature(langs *languages.Service, logger *zap.Logger) *Feature {
	return &Feature{languages: langs, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "qa"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/stats", f.HandleStats)
	return nil
}

// HandleStats returns coverage counters and integrity findings for the
// loaded dataset.
func (f *Feature) HandleStats(c *fiber.Ctx) error {
	t := f.languages.Snapshot()
	if t == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "dataset not loaded",
		})
	}
	s := pipeline.ComputeStats(t)
	return c.JSON(fiber.Map{
		"rows":                 s.Rows,
		"multi_source":         s.MultiSource,
		"fuzzy_merged":         s.FuzzyMerged,
		"source_counts":        s.SourceCounts,
		"has_extensions":       s.HasExtensions,
		"has_paradigm":         s.HasParadigm,
		"has_typing":           s.HasTyping,
		"has_hello_world":      s.HasHelloWorld,
		"pldb_with_extensions": s.PLDBWithExtensions,
		"refined_candidates":   s.RefinedCandidates,
		"in_hyperpolyglot":     s.InHyperpolyglot,
		"in_pygments":          s.InPygments,
		"in_rosettacode":       s.InRosettaCode,
		"duplicate_ids":        s.DuplicateIDs,
		"empty_canonical":      s.EmptyCanonical,
		"duplicate_names":      s.DuplicateNames,
	})
}
