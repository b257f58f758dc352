package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"bookstore/internal/model"
	"bookstore/internal/service"
	"bookstore/internal/validation"
)

// storageCtx keeps trace values from the request but not its cancellation:
// a client going away does not interrupt a statement already sent to the database.
func storageCtx(c *fiber.Ctx) context.Context {
	return context.WithoutCancel(c.UserContext())
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// decodeBook parses the JSON body; any "id" field is ignored because BookInput has none.
func decodeBook(c *fiber.Ctx) (model.BookInput, error) {
	var in model.BookInput
	err := c.BodyParser(&in)
	return in, err
}

// writeServiceError converts service errors into the standard envelope.
func writeServiceError(c *fiber.Ctx, err error) error {
	var ve validation.Errors
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "book not found")
	case errors.As(err, &ve):
		return writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "validation failed", ve)
	default:
		return writeInternalError(c, err)
	}
}

// ListBooks godoc
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} model.Book
// @Failure 500 {object} errorPayload
// @Router /api/v1/books [get]
func ListBooks(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		books, err := svc.List(storageCtx(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(books)
	}
}

// GetBook godoc
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} model.Book
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/books/{id} [get]
func GetBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		book, err := svc.Get(storageCtx(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(book)
	}
}

// CreateBook godoc
// @Summary Create a book
// @Description The id field, if present, is ignored; the server assigns a new one.
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.BookInput true "Book"
// @Success 201 {object} model.Book
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/books [post]
func CreateBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := decodeBook(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		book, err := svc.Create(storageCtx(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(book)
	}
}

// UpdateBook godoc
// @Summary Replace a book
// @Description Whole-record replacement. The path id wins over any id in the body.
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param book body model.BookInput true "Book"
// @Success 200 {object} model.Book
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/books/{id} [put]
func UpdateBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		in, err := decodeBook(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		book, err := svc.Update(storageCtx(c), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(book)
	}
}

// DeleteBook godoc
// @Summary Delete a book
// @Tags books
// @Param id path int true "Book ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/books/{id} [delete]
func DeleteBook(svc service.BookService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(storageCtx(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
