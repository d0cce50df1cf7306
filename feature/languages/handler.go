package languages

import (
	"lang-atlas/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the language dataset.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the language routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/languages")
	group.Get("/", h.HandleList)
	group.Get("/:lang_id", h.HandleGet)
	group.Get("/:lang_id/aliases", h.HandleAliases)
}

// HandleList returns master rows filtered by ?q= (name substring) and
// ?source= (source flag), paginated with ?limit= and ?offset=.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	rows := h.service.List(
		c.Query("q"),
		c.Query("source"),
		c.QueryInt("limit", 100),
		c.QueryInt("offset", 0),
	)
	out := make([]LanguageRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromRecord(r))
	}
	return c.JSON(fiber.Map{"count": len(out), "languages": out})
}

// HandleGet returns a single master row by lang_id.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	langID := c.Params("lang_id")
	rec := h.service.Get(langID)
	if rec == nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Info("Language not found", zap.String("lang_id", langID))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "language not found",
		})
	}
	return c.JSON(FromRecord(rec))
}

// HandleAliases returns the alias rows recorded for a lang_id.
func (h *Handler) HandleAliases(c *fiber.Ctx) error {
	langID := c.Params("lang_id")
	if h.service.Get(langID) == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "language not found",
		})
	}
	aliases := h.service.AliasesFor(langID)
	out := make([]fiber.Map, 0, len(aliases))
	for _, a := range aliases {
		out = append(out, fiber.Map{
			"alias":   a.Alias,
			"lang_id": a.LangID,
			"source":  a.Source,
		})
	}
	return c.JSON(fiber.Map{"count": len(out), "aliases": out})
}
