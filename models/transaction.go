// transaction.go - Defines the Transaction (borrow record) model for the database

package models // Declares the package name

import "time"

// Transaction records a single borrow event. It references the user and
// book by id only; "which loans belong to this book" is a query, not a
// stored collection. A transaction is open until IsReturned flips, and a
// closed transaction never changes again except by deletion.
type Transaction struct {
	TransactionID uint       `gorm:"primaryKey" json:"transaction_id"` // Unique transaction ID (primary key)
	UserID        uint       `gorm:"not null;index" json:"user_id"`    // Borrowing user
	BookID        uint       `gorm:"not null;index" json:"book_id"`    // Borrowed book
	BorrowDate    time.Time  `json:"borrow_date"`                      // When the book was taken out
	ReturnDate    *time.Time `json:"return_date"`                      // When it came back (nil while open)
	IsReturned    bool       `gorm:"default:false" json:"is_returned"` // Whether the loan is closed
	OverdueDays   int        `gorm:"default:0" json:"overdue_days"`    // Days past the grace period
	FineImposed   float64    `gorm:"default:0" json:"fine_imposed"`    // Fine charged on this loan
	CreatedAt     time.Time  `json:"created_at"`                       // When the record was created
}
