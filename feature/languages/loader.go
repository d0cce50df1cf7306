package languages

import (
	"lang-atlas/core/pipeline"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the languages feature.
func NewFeature(data pipeline.Config, logger *zap.Logger) *Feature {
	svc := NewService(data, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the query service so sibling features can share the
// loaded dataset.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "languages"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load reads the dataset and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Reload(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
