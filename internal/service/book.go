package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bookstore/internal/model"
	"bookstore/internal/repository"
	"bookstore/internal/validation"
)

var ErrNotFound = errors.New("book not found")

// BookService defines the use cases for the book inventory.
type BookService interface {
	// List returns every book, or an error if any part of the read fails.
	List(ctx context.Context) ([]model.Book, error)

	// Get returns a single book by its ID.
	Get(ctx context.Context, id int64) (*model.Book, error)

	// Create validates the input and stores a new book with a fresh ID.
	Create(ctx context.Context, in model.BookInput) (*model.Book, error)

	// Update validates the input and replaces the stored book with the given ID.
	Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error)

	// Delete permanently removes a book by ID.
	Delete(ctx context.Context, id int64) error
}

// bookService is a concrete implementation of BookService.
type bookService struct {
	repo   repository.BookRepository
	tracer trace.Tracer
}

// NewBookService constructs a new BookService.
func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{
		repo:   repo,
		tracer: otel.Tracer("bookstore/internal/service"),
	}
}

func (s *bookService) List(ctx context.Context) (books []model.Book, err error) {
	ctx, span := s.tracer.Start(ctx, "BookService.List")
	defer func() { endSpan(span, err) }()

	books, err = s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	span.SetAttributes(attribute.Int("book.count", len(books)))
	return books, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (book *model.Book, err error) {
	ctx, span := s.tracer.Start(ctx, "BookService.Get", trace.WithAttributes(attribute.Int64("book.id", id)))
	defer func() { endSpan(span, err) }()

	book, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate("get book", err)
	}
	return book, nil
}

func (s *bookService) Create(ctx context.Context, in model.BookInput) (book *model.Book, err error) {
	ctx, span := s.tracer.Start(ctx, "BookService.Create")
	defer func() { endSpan(span, err) }()

	in, err = prepare(in)
	if err != nil {
		return nil, err
	}

	book, err = s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	span.SetAttributes(attribute.Int64("book.id", book.ID))
	return book, nil
}

func (s *bookService) Update(ctx context.Context, id int64, in model.BookInput) (book *model.Book, err error) {
	ctx, span := s.tracer.Start(ctx, "BookService.Update", trace.WithAttributes(attribute.Int64("book.id", id)))
	defer func() { endSpan(span, err) }()

	in, err = prepare(in)
	if err != nil {
		return nil, err
	}

	book, err = s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, translate("update book", err)
	}
	return book, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "BookService.Delete", trace.WithAttributes(attribute.Int64("book.id", id)))
	defer func() { endSpan(span, err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		return translate("delete book", err)
	}
	return nil
}

// prepare trims the text fields and validates the result.
func prepare(in model.BookInput) (model.BookInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	if err := validation.Struct(in); err != nil {
		return in, err
	}
	return in, nil
}

// translate maps a missing row to ErrNotFound and wraps anything else with op.
func translate(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// endSpan records unexpected failures; not-found and validation are client outcomes.
func endSpan(span trace.Span, err error) {
	var ve validation.Errors
	if err != nil && !errors.Is(err, ErrNotFound) && !errors.As(err, &ve) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
