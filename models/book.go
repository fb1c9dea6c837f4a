// book.go - Defines the Book model for the database

package models // Declares the package name

import "time"

type Book struct { // Book struct represents a catalog entry in the database
	BookID          uint      `gorm:"primaryKey" json:"book_id"`       // Unique book ID (primary key)
	Title           string    `gorm:"size:255;not null" json:"title"`  // Title (cannot be null)
	Edition         string    `gorm:"size:50" json:"edition"`          // Edition (optional)
	Author          string    `gorm:"size:100;not null" json:"author"` // Author (cannot be null)
	TotalCopies     int       `gorm:"not null" json:"total_copies"`    // Copies the library owns
	AvailableCopies int       `gorm:"not null" json:"available_copies"` // Copies currently on the shelf
	Cost            float64   `json:"cost"`                            // Replacement cost
	Source          string    `gorm:"size:100" json:"source"`          // Where the book was acquired
	CreatedAt       time.Time `json:"created_at"`                      // When the entry was created
}
