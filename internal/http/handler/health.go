package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthInfo is the static part of the health document.
type HealthInfo struct {
	Service  string
	BooksURL string
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Service   string `json:"service" example:"Bookstore API"`
	APIURL    string `json:"apiURL" example:"http://localhost:5000/api/v1/books"`
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthCheck godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/v1/health [get]
func HealthCheck(info HealthInfo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Service:   info.Service,
			APIURL:    info.BooksURL,
		})
	}
}

// LivenessProbe answers 200 while the process can serve requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ReadinessProbe checks DB connectivity only.
func ReadinessProbe(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
	}
}
