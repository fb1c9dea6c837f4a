// transaction_test.go - End-to-end tests for the circulation flow

package handlers

import (
	"encoding/json" // For decoding JSON
	"fmt"           // For formatting paths
	"net/http"      // HTTP status codes
	"testing"       // Go's testing package

	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For fatal assertions
)

// TestCirculationFlow walks the whole borrow/return lifecycle over HTTP
func TestCirculationFlow(t *testing.T) {
	setupTestDB(t, "test_handlers_txns.db")
	router := setupRouter()

	studentToken := registerAndLogin(t, router, "student@example.com", "student")
	staffToken := registerAndLogin(t, router, "staff@example.com", "staff")

	// Resolve the two account ids from the user list
	w := doJSON(router, "GET", "/users", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []struct {
		UserID   uint   `json:"user_id"`
		UserType string `json:"user_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	var studentID, staffID uint
	for _, u := range users {
		if u.UserType == "student" {
			studentID = u.UserID
		} else {
			staffID = u.UserID
		}
	}
	require.NotZero(t, studentID)
	require.NotZero(t, staffID)

	// No loans yet: the list reads as not found
	w = doJSON(router, "GET", "/transactions", studentToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Staff adds a single-copy book
	w = doJSON(router, "POST", "/books", staffToken, map[string]any{
		"title":            "The Art of War",
		"author":           "Sun Tzu",
		"total_copies":     1,
		"available_copies": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Book struct {
			BookID uint `json:"book_id"`
		} `json:"book"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	bookID := created.Book.BookID

	// Staff cannot borrow, whatever the availability
	w = doJSON(router, "POST", "/transactions", staffToken, map[string]any{
		"user_id": staffID,
		"book_id": bookID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown user or book is 404
	w = doJSON(router, "POST", "/transactions", studentToken, map[string]any{
		"user_id": 9999,
		"book_id": bookID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(router, "POST", "/transactions", studentToken, map[string]any{
		"user_id": studentID,
		"book_id": 9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The student borrows the last copy
	w = doJSON(router, "POST", "/transactions", studentToken, map[string]any{
		"user_id": studentID,
		"book_id": bookID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var borrowed struct {
		Transaction struct {
			TransactionID uint `json:"transaction_id"`
		} `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &borrowed))
	txnID := borrowed.Transaction.TransactionID

	// The shelf is now empty and a second borrow fails
	w = doJSON(router, "GET", fmt.Sprintf("/books/%d", bookID), studentToken, nil)
	var book struct {
		AvailableCopies int `json:"available_copies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, 0, book.AvailableCopies)

	w = doJSON(router, "POST", "/transactions", studentToken, map[string]any{
		"user_id": studentID,
		"book_id": bookID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A book with a copy on loan cannot be deleted
	w = doJSON(router, "DELETE", fmt.Sprintf("/books/%d", bookID), staffToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Return the book
	w = doJSON(router, "PUT", fmt.Sprintf("/transactions/%d/return", txnID), studentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The copy is back on the shelf
	w = doJSON(router, "GET", fmt.Sprintf("/books/%d", bookID), studentToken, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, 1, book.AvailableCopies)

	// A second return attempt is rejected
	w = doJSON(router, "PUT", fmt.Sprintf("/transactions/%d/return", txnID), studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Returning a missing transaction is 404
	w = doJSON(router, "PUT", "/transactions/9999/return", studentToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The loan record survives and can be listed, then deleted
	w = doJSON(router, "GET", "/transactions", studentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "DELETE", fmt.Sprintf("/transactions/%d", txnID), studentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, "DELETE", fmt.Sprintf("/transactions/%d", txnID), studentToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
