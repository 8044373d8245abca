// Package rayid assigns a unique request ID (RayID) to every incoming
// request for tracing.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the header carrying the request's ray ID.
const Header = "X-Ray-ID"

// New creates the ray ID middleware. It stores the ID in the request locals
// under "ray_id" and echoes it in the response headers. An ID supplied by the
// caller is forwarded unchanged.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
