package sqldb

import (
	"context"
	"database/sql"
	"sync"

	"bookstore/internal/database"
	"bookstore/internal/model"
	"bookstore/internal/repository"
)

const bookColumns = "id, title, author, published_year"

// BookSQL is a database/sql implementation of repository.BookRepository.
// It speaks both SQLite and PostgreSQL; queries are written with '?' and rebound per dialect.
//
// Writes go through a single writer section so statements never interleave on the
// database file; reads run concurrently and rely on the engine's isolation.
type BookSQL struct {
	db      *sql.DB
	dialect database.Dialect
	writeMu sync.Mutex
}

// NewBookSQL creates a new BookSQL repository.
func NewBookSQL(db *sql.DB, dialect database.Dialect) *BookSQL {
	return &BookSQL{db: db, dialect: dialect}
}

var _ repository.BookRepository = (*BookSQL)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(s rowScanner) (*model.Book, error) {
	var (
		b    model.Book
		year sql.NullInt64
	)
	if err := s.Scan(&b.ID, &b.Title, &b.Author, &year); err != nil {
		return nil, err
	}
	if year.Valid {
		y := int(year.Int64)
		b.PublishedYear = &y
	}
	return &b, nil
}

func nullableYear(y *int) sql.NullInt64 {
	if y == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*y), Valid: true}
}

// List returns all books ordered by ID.
func (r *BookSQL) List(ctx context.Context) ([]model.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single book by its ID.
func (r *BookSQL) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	const q = `SELECT ` + bookColumns + ` FROM books WHERE id = ?`
	return scanBook(r.db.QueryRowContext(ctx, r.dialect.Rebind(q), id))
}

// Create inserts a new row and returns the stored record.
func (r *BookSQL) Create(ctx context.Context, in model.BookInput) (*model.Book, error) {
	const q = `INSERT INTO books (title, author, published_year) VALUES (?, ?, ?) RETURNING ` + bookColumns

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	return scanBook(r.db.QueryRowContext(ctx, r.dialect.Rebind(q),
		in.Title,
		in.Author,
		nullableYear(in.PublishedYear),
	))
}

// Update replaces title, author and published_year of the row with the given ID.
func (r *BookSQL) Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error) {
	const q = `UPDATE books SET title = ?, author = ?, published_year = ? WHERE id = ? RETURNING ` + bookColumns

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	return scanBook(r.db.QueryRowContext(ctx, r.dialect.Rebind(q),
		in.Title,
		in.Author,
		nullableYear(in.PublishedYear),
		id,
	))
}

// Delete removes a book by ID.
func (r *BookSQL) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM books WHERE id = ?`

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(q), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
