// book_test.go - Tests for the catalog endpoints

package handlers

import (
	"encoding/json" // For decoding JSON
	"fmt"           // For formatting paths
	"net/http"      // HTTP status codes
	"testing"       // Go's testing package

	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For fatal assertions
)

func TestBookEndpoints(t *testing.T) {
	setupTestDB(t, "test_handlers_books.db")
	router := setupRouter()
	token := registerAndLogin(t, router, "books@example.com", "staff")

	// An empty catalog lists as not found
	w := doJSON(router, "GET", "/books", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Add a book
	w = doJSON(router, "POST", "/books", token, map[string]any{
		"title":            "1984",
		"edition":          "1st",
		"author":           "George Orwell",
		"total_copies":     3,
		"available_copies": 3,
		"cost":             12.5,
		"source":           "purchase",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Book struct {
			BookID uint `json:"book_id"`
		} `json:"book"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Book.BookID

	// Copy-count invariant rejected up front
	w = doJSON(router, "POST", "/books", token, map[string]any{
		"title":            "Broken",
		"author":           "Nobody",
		"total_copies":     1,
		"available_copies": 2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing required fields
	w = doJSON(router, "POST", "/books", token, map[string]any{
		"title": "No Author",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// List and get
	w = doJSON(router, "GET", "/books", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", fmt.Sprintf("/books/%d", id), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/books/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Delete
	w = doJSON(router, "DELETE", fmt.Sprintf("/books/%d", id), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "DELETE", "/books/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
