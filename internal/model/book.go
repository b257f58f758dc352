package model

// Book is a single inventory record.
// PublishedYear is nil when the year is unknown.
type Book struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedYear *int   `json:"published_year,omitempty"`
}

// BookInput is the writable part of a Book as accepted by create and update.
// It has no ID: identifiers are assigned by storage and taken from the path on update,
// so an "id" in a request body is dropped during decoding.
type BookInput struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	PublishedYear *int   `json:"published_year"`
}
