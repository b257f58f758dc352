package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/docs"
)

func TestSwagger(t *testing.T) {
	app := fiber.New()
	app.Get("/swagger/*", Swagger(docs.SwaggerInfo))

	fetch := func(host, proto string) string {
		req := httptest.NewRequest(http.MethodGet, "http://"+host+"/swagger/doc.json", nil)
		if proto != "" {
			req.Header.Set("X-Forwarded-Proto", proto)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(raw)
	}

	t.Run("host and forwarded scheme", func(t *testing.T) {
		doc := fetch("books.example.com", "https, http")

		assert.Contains(t, doc, `"host": "books.example.com"`)
		assert.Contains(t, doc, `"https"`)
		assert.Contains(t, doc, "/api/v1/books/{id}")
	})

	t.Run("concurrent requests keep their own host", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				host := fmt.Sprintf("shop-%02d.example.com", i)
				doc := fetch(host, "")
				assert.Contains(t, doc, `"host": "`+host+`"`)
			}(i)
		}
		wg.Wait()

		// Stored values outlive the requests that produced them.
		assert.Regexp(t, `^shop-\d{2}\.example\.com$`, docs.SwaggerInfo.Host)
	})
}
