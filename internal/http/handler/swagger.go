package handler

import (
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
)

// Swagger serves the Swagger UI and document for spec, with host and scheme
// taken from the request (X-Forwarded-Proto honoured).
// spec is shared by every request, so it is only touched under mu.
func Swagger(spec *swag.Spec) fiber.Handler {
	var mu sync.Mutex
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get(fiber.HeaderXForwardedProto); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		// Header values alias fasthttp's request buffer, which is reused after the request.
		host := utils.CopyString(c.Get(fiber.HeaderHost))
		scheme = utils.CopyString(scheme)

		mu.Lock()
		defer mu.Unlock()
		spec.Host = host
		spec.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
