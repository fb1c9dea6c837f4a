// books.go - Catalog management

package library // Declares the package name

import (
	"errors"
	"fmt"
	"strings"

	"go-library-backend/models" // Library models

	"gorm.io/gorm" // GORM ORM
)

// BookInput carries the fields of a new catalog entry. The caller
// supplies both copy counts; AddBook holds them to the availability
// invariant.
type BookInput struct {
	Title           string
	Edition         string
	Author          string
	TotalCopies     int
	AvailableCopies int
	Cost            float64
	Source          string
}

// AddBook validates and stores a catalog entry. The invariant
// 0 <= available <= total is enforced here so no book can enter the
// catalog already inconsistent.
func AddBook(db *gorm.DB, input BookInput) (*models.Book, error) {
	switch {
	case strings.TrimSpace(input.Title) == "":
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	case strings.TrimSpace(input.Author) == "":
		return nil, fmt.Errorf("%w: author is required", ErrValidation)
	case input.TotalCopies < 0:
		return nil, fmt.Errorf("%w: total_copies cannot be negative", ErrValidation)
	case input.AvailableCopies < 0:
		return nil, fmt.Errorf("%w: available_copies cannot be negative", ErrValidation)
	case input.AvailableCopies > input.TotalCopies:
		return nil, fmt.Errorf("%w: available_copies cannot exceed total_copies", ErrValidation)
	}

	book := models.Book{
		Title:           strings.TrimSpace(input.Title),
		Edition:         input.Edition,
		Author:          strings.TrimSpace(input.Author),
		TotalCopies:     input.TotalCopies,
		AvailableCopies: input.AvailableCopies,
		Cost:            input.Cost,
		Source:          input.Source,
	}
	if err := db.Create(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBook fetches a single catalog entry by id.
func GetBook(db *gorm.DB, id uint) (*models.Book, error) {
	var book models.Book
	if err := db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &book, nil
}

// ListBooks returns the whole catalog.
func ListBooks(db *gorm.DB) ([]models.Book, error) {
	var books []models.Book
	if err := db.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// DeleteBook removes a catalog entry. A book with copies still out on
// loan cannot be deleted.
func DeleteBook(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.First(&book, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: book %d", ErrNotFound, id)
			}
			return err
		}

		var open int64
		if err := tx.Model(&models.Transaction{}).
			Where("book_id = ? AND is_returned = ?", id, false).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return fmt.Errorf("%w: book has %d copies on loan", ErrHasOpenLoans, open)
		}

		return tx.Delete(&book).Error
	})
}
