package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/model"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Code  string `json:"code" validate:"omitempty,alpha"`
	Grade string `validate:"omitempty,oneof=a b"`
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Struct(sample{Name: "ok", Code: "abc", Grade: "a"}))
	})

	t.Run("field errors use json names", func(t *testing.T) {
		err := Struct(sample{Code: "ab1", Grade: "c"})
		require.Error(t, err)

		var fes Errors
		require.True(t, errors.As(err, &fes))
		assert.Equal(t, Errors{
			{Field: "name", Error: "is required"},
			{Field: "code", Error: "failed alpha"},
			{Field: "Grade", Error: "failed oneof:a b"},
		}, fes)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("book input", func(t *testing.T) {
		err := Struct(model.BookInput{PublishedYear: nil})

		var fes Errors
		require.True(t, errors.As(err, &fes))
		assert.Equal(t, Errors{
			{Field: "title", Error: "is required"},
			{Field: "author", Error: "is required"},
		}, fes)
	})

	t.Run("not a struct", func(t *testing.T) {
		err := Struct(42)
		require.Error(t, err)

		var fes Errors
		assert.False(t, errors.As(err, &fes))
	})
}
