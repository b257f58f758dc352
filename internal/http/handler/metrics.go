package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Metrics serves the gatherer in the Prometheus exposition format.
// Scrapes are traced by otelhttp here; the fiber tracing middleware skips this path.
func Metrics(g prometheus.Gatherer) fiber.Handler {
	h := promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	return adaptor.HTTPHandler(otelhttp.NewHandler(h, "GET /metrics"))
}
