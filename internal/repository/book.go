package repository

import (
	"context"

	"bookstore/internal/model"
)

// BookRepository defines data access for books using SQL queries only.
// No business logic here — strictly persistence operations, one statement per call.
type BookRepository interface {
	// List returns every stored book. A failure on any row fails the whole call.
	List(ctx context.Context) ([]model.Book, error)

	// FindByID returns a book by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.Book, error)

	// Create inserts a new row and returns it with the ID assigned by the database.
	Create(ctx context.Context, in model.BookInput) (*model.Book, error)

	// Update overwrites every writable column of an existing row.
	// It returns sql.ErrNoRows when no row has the ID; it never inserts.
	Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error)

	// Delete removes a row permanently. It returns sql.ErrNoRows when no row has the ID.
	Delete(ctx context.Context, id int64) error
}
