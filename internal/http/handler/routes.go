package handler

import (
	"github.com/gofiber/fiber/v2"

	"bookstore/internal/service"
)

// RegisterRoutes attaches the health probes and the book API to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db Pinger, bookSvc service.BookService, info HealthInfo) {
	health := HealthCheck(info)
	app.Get("/", health)
	app.Get("/health", health)
	app.Get("/healthz", LivenessProbe())
	app.Get("/readyz", ReadinessProbe(db))

	v1 := app.Group("/api/v1")
	v1.Get("", health)
	v1.Get("/health", health)

	books := v1.Group("/books")
	books.Get("", ListBooks(bookSvc))
	books.Post("", CreateBook(bookSvc))
	books.Get("/:id", GetBook(bookSvc))
	books.Put("/:id", UpdateBook(bookSvc))
	books.Delete("/:id", DeleteBook(bookSvc))
}
