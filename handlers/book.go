// book.go - Handles catalog endpoints

package handlers // Declares the package name

import (
	"net/http" // HTTP status codes

	"go-library-backend/database" // Database connection
	"go-library-backend/library"  // Domain operations

	"github.com/gin-gonic/gin" // Gin web framework
)

type AddBookInput struct { // Struct for new catalog entries
	Title           string  `json:"title" binding:"required"`        // Title (required)
	Edition         string  `json:"edition"`                         // Edition (optional)
	Author          string  `json:"author" binding:"required"`       // Author (required)
	TotalCopies     int     `json:"total_copies" binding:"required"` // Copies owned (required)
	AvailableCopies int     `json:"available_copies"`                // Copies on the shelf
	Cost            float64 `json:"cost"`                            // Replacement cost
	Source          string  `json:"source"`                          // Acquisition source
}

func AddBook(c *gin.Context) { // Handler to add a book to the catalog
	var input AddBookInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	book, err := library.AddBook(database.DB, library.BookInput{
		Title:           input.Title,
		Edition:         input.Edition,
		Author:          input.Author,
		TotalCopies:     input.TotalCopies,
		AvailableCopies: input.AvailableCopies,
		Cost:            input.Cost,
		Source:          input.Source,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Book added successfully", "book": book})
}

func ListBooks(c *gin.Context) { // Handler to list the catalog
	books, err := library.ListBooks(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(books) == 0 { // An empty catalog reads as nothing found
		c.JSON(http.StatusNotFound, gin.H{"error": "no books found"})
		return
	}
	c.JSON(http.StatusOK, books)
}

func GetBook(c *gin.Context) { // Handler to fetch a single book
	id, ok := pathID(c)
	if !ok {
		return
	}
	book, err := library.GetBook(database.DB, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func DeleteBook(c *gin.Context) { // Handler to delete a book
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := library.DeleteBook(database.DB, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}
