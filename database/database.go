// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"go-library-backend/auth"   // Password hashing
	"go-library-backend/config" // Project config
	"go-library-backend/models" // Library models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	var err error // Declare error variable
	// TranslateError lets callers match gorm.ErrDuplicatedKey on unique
	// constraint violations instead of driver-specific error strings.
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil { // If error, return it
		return err
	}

	// Auto-migrate the library models (create tables if needed)
	if err := DB.AutoMigrate(&models.User{}, &models.Book{}, &models.Transaction{}); err != nil {
		return err
	}

	// Create a default librarian account if configured
	return createDefaultLibrarian()
}

// createDefaultLibrarian - Creates a default staff account if configured and none exists
// Credentials come from environment variables instead of hardcoded values
func createDefaultLibrarian() error {
	cfg := config.Load() // Load configuration

	// Only seed the account when explicitly configured
	if !cfg.CreateAdmin || cfg.AdminPassword == "" {
		return nil
	}

	// Check if any staff account exists
	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleStaff).Count(&count)

	if count == 0 {
		hash, err := auth.HashPassword(auth.Plaintext(cfg.AdminPassword))
		if err != nil {
			return err
		}

		librarian := models.User{
			Name:     "Librarian",
			Email:    cfg.AdminEmail,
			Password: hash,
			Role:     models.RoleStaff,
		}

		if err := DB.Create(&librarian).Error; err != nil {
			return err
		}
	}

	return nil
}
