// Package extensions serves the file extension inventory over HTTP,
// aggregated on demand from the languages feature's loaded dataset.
package extensions

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

// NewFeature creates the extensions feature on top of the languages service.
func NewFeature(langs *languages.Service, logger *zap.Logger) *Feature {
	return &Feature{languages: langs, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "extensions"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/extensions", f.HandleInventory)
	return nil
}

// HandleInventory returns the extension inventory derived from the loaded
// dataset, most-claimed extensions first.
func (f *Feature) HandleInventory(c *fiber.Ctx) error {
	t := f.languages.Snapshot()
	if t == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "dataset not loaded",
		})
	}
	inv := pipeline.Inventory(t)
	out := make([]fiber.Map, 0, len(inv))
	for _, er := range inv {
		out = append(out, fiber.Map{
			"extension":       er.Extension,
			"count_total":     er.CountTotal,
			"count_pldb":      er.CountPLDB,
			"count_linguist":  er.CountLinguist,
			"count_wikipedia": er.CountWikipedia,
			"count_esolang":   er.CountEsolang,
			"sample_lang":     er.SampleLang,
		})
	}
	return c.JSON(fiber.Map{"count": len(out), "extensions": out})
}
