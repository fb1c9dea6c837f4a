// transaction.go - Handles borrow, return and loan-record endpoints

package handlers // Declares the package name

import (
	"net/http" // HTTP status codes

	"go-library-backend/database" // Database connection
	"go-library-backend/library"  // Domain operations
	"go-library-backend/metrics"  // Circulation counters

	"github.com/gin-gonic/gin" // Gin web framework
)

type BorrowInput struct { // Struct for borrow requests
	UserID uint `json:"user_id" binding:"required"` // Borrowing user (required)
	BookID uint `json:"book_id" binding:"required"` // Book to borrow (required)
}

func Borrow(c *gin.Context) { // Handler to record a borrow transaction
	var input BorrowInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	txn, err := library.BorrowBook(database.DB, input.UserID, input.BookID)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.BorrowsTotal.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Transaction recorded successfully", "transaction": txn})
}

func ListTransactions(c *gin.Context) { // Handler to list all loan records
	txns, err := library.ListTransactions(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(txns) == 0 { // No loans recorded yet reads as nothing found
		c.JSON(http.StatusNotFound, gin.H{"error": "no transactions found"})
		return
	}
	c.JSON(http.StatusOK, txns)
}

func Return(c *gin.Context) { // Handler to close a loan
	id, ok := pathID(c)
	if !ok {
		return
	}
	txn, err := library.ReturnBook(database.DB, id)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.ReturnsTotal.Inc()
	if txn.FineImposed > 0 {
		metrics.FinesAssessedTotal.Add(txn.FineImposed)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book returned successfully", "transaction": txn})
}

func DeleteTransaction(c *gin.Context) { // Handler to delete a loan record
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := library.DeleteTransaction(database.DB, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
