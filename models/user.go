// user.go - Defines the User model for the database

package models // Declares the package name

import (
	"time"

	"go-library-backend/auth" // Password hash type
)

// Role is the closed set of account types. Using a named type keeps
// invalid role strings from ever reaching the database.
type Role string

const (
	RoleStudent Role = "student" // Students may borrow books and accrue fines
	RoleStaff   Role = "staff"   // Staff manage the catalog and may not borrow
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleStaff
}

type User struct { // User struct represents a library account in the database
	UserID        uint      `gorm:"primaryKey" json:"user_id"`            // Unique user ID (primary key)
	Name          string    `gorm:"size:100;not null" json:"name"`        // Full name (cannot be null)
	ContactNumber string    `gorm:"size:15" json:"contact_number"`        // Phone number (optional)
	Email         string    `gorm:"size:100;unique;not null" json:"email"` // Email (must be unique)
	Password      auth.Hash `gorm:"size:255;not null" json:"-"`           // Hashed password (never serialized)
	Role          Role      `gorm:"size:50;not null" json:"user_type"`    // Account role (student/staff)
	FineDue       float64   `gorm:"default:0" json:"fine_due"`            // Accumulated unpaid fines
	CreatedAt     time.Time `json:"created_at"`                           // When the account was created
}
