package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's RayID.
const HeaderName = "X-Ray-Id"

// New returns a middleware that assigns a unique RayID to every request.
// The id is stored in c.Locals("ray_id") for handlers and loggers, and
// echoed in the response headers for client-side correlation.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Honor an inbound id so upstream proxies can correlate too.
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
