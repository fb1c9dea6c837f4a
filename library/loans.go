// loans.go - The borrow/return state machine and fine computation
//
// A Transaction is OPEN from creation until exactly one successful
// return closes it. Both borrow and return run inside a single database
// transaction so the availability counter and the loan record can never
// go out of step: any failure rolls the whole operation back.

package library // Declares the package name

import (
	"errors"
	"fmt"
	"log"
	"time"

	"go-library-backend/config" // Fine rate and grace period
	"go-library-backend/models" // Library models

	"gorm.io/gorm"        // GORM ORM
	"gorm.io/gorm/clause" // Row locking on engines that support it
)

// BorrowBook checks eligibility and availability, then records an open
// loan and takes one copy off the shelf.
func BorrowBook(db *gorm.DB, userID, bookID uint) (*models.Transaction, error) {
	var txn *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		// STEP 1: The borrower must exist and must not be staff
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, userID)
			}
			return err
		}
		if user.Role == models.RoleStaff {
			return ErrStaffCannotBorrow
		}

		// STEP 2: The book must exist
		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&book, bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: book %d", ErrNotFound, bookID)
			}
			return err
		}

		// STEP 3: Take a copy off the shelf. The decrement is a guarded
		// UPDATE: two borrowers racing for the last copy both reach this
		// point, but only one statement finds available_copies > 0 still
		// true. Zero rows affected means the other borrower won.
		res := tx.Model(&models.Book{}).
			Where("book_id = ? AND available_copies > 0", bookID).
			UpdateColumn("available_copies", gorm.Expr("available_copies - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookUnavailable
		}

		// STEP 4: Record the open loan
		txn = &models.Transaction{
			UserID:     userID,
			BookID:     bookID,
			BorrowDate: time.Now().UTC(),
		}
		return tx.Create(txn).Error
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ReturnBook closes an open loan: stamps the return date, charges any
// overdue fine to a student borrower, and puts the copy back on the
// shelf. A loan closes at most once; a second return attempt fails and
// changes nothing.
func ReturnBook(db *gorm.DB, transactionID uint) (*models.Transaction, error) {
	cfg := config.Load() // Fine rate and grace period come from config

	var txn models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		// STEP 1: The loan must exist and still be open
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&txn, transactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: transaction %d", ErrNotFound, transactionID)
			}
			return err
		}
		if txn.IsReturned {
			return ErrAlreadyReturned
		}

		now := time.Now().UTC()
		txn.IsReturned = true
		txn.ReturnDate = &now

		// STEP 2: Fine accrual, student borrowers only. Staff cannot
		// borrow in the first place, so the role check is defensive.
		// A borrower deleted since the loan opened skips accrual but
		// the loan still closes.
		var user models.User
		switch err := tx.First(&user, txn.UserID).Error; {
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Printf("return: borrower %d no longer exists, skipping fine for transaction %d", txn.UserID, transactionID)
		case err != nil:
			return err
		case user.Role == models.RoleStudent:
			overdue := int(now.Sub(txn.BorrowDate).Hours()/24) - cfg.GracePeriodDays
			if overdue > 0 {
				txn.OverdueDays = overdue
				txn.FineImposed = float64(overdue) * cfg.FineRatePerDay
				if err := tx.Model(&models.User{}).
					Where("user_id = ?", user.UserID).
					UpdateColumn("fine_due", gorm.Expr("fine_due + ?", txn.FineImposed)).Error; err != nil {
					return err
				}
			}
		}

		// STEP 3: Put the copy back. The increment is guarded so the
		// count can never pass total_copies. If the book row is gone
		// entirely the whole return fails and nothing above commits.
		res := tx.Model(&models.Book{}).
			Where("book_id = ? AND available_copies < total_copies", txn.BookID).
			UpdateColumn("available_copies", gorm.Expr("available_copies + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Book{}).Where("book_id = ?", txn.BookID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("%w: book %d", ErrNotFound, txn.BookID)
			}
			// Shelf already full: the counter was inconsistent with the
			// loan, leave it at the total rather than pushing past it.
			log.Printf("return: book %d already at full availability, count left unchanged", txn.BookID)
		}

		// STEP 4: Persist the closed loan
		return tx.Save(&txn).Error
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// GetTransaction fetches a single loan record by id.
func GetTransaction(db *gorm.DB, id uint) (*models.Transaction, error) {
	var txn models.Transaction
	if err := db.First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: transaction %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &txn, nil
}

// ListTransactions returns every loan record, open and closed.
func ListTransactions(db *gorm.DB) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := db.Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

// DeleteTransaction removes a loan record unconditionally. Deleting an
// open loan does not restock the book; the record is an audit row.
func DeleteTransaction(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: transaction %d", ErrNotFound, id)
	}
	return nil
}
