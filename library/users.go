// users.go - Account registration, authentication and user CRUD

package library // Declares the package name

import (
	"errors"
	"fmt"
	"strings"

	"go-library-backend/auth"   // Password hashing and types
	"go-library-backend/models" // Library models

	"gorm.io/gorm" // GORM ORM
)

// RegisterInput carries the fields needed to open an account.
type RegisterInput struct {
	Name          string
	ContactNumber string
	Email         string
	Password      auth.Plaintext
	Role          models.Role
}

// RegisterUser validates the input, hashes the password and stores the
// account. The fine balance starts at zero.
func RegisterUser(db *gorm.DB, input RegisterInput) (*models.User, error) {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	case strings.TrimSpace(input.Email) == "":
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	case input.Password == "":
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	case !input.Role.Valid():
		return nil, fmt.Errorf("%w: user_type must be student or staff", ErrValidation)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:          strings.TrimSpace(input.Name),
		ContactNumber: input.ContactNumber,
		Email:         strings.TrimSpace(input.Email),
		Password:      hash,
		Role:          input.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) { // Unique email constraint
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate looks up the account by email and checks the password.
// An unknown email and a wrong password are indistinguishable to the caller.
func Authenticate(db *gorm.DB, email string, password auth.Plaintext) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Password.Verify(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser fetches a single account by id.
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every account.
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UserUpdate holds the optional fields of a partial update. Nil pointers
// leave the stored value untouched.
type UserUpdate struct {
	Name          *string
	ContactNumber *string
	Email         *string
	Password      *auth.Plaintext
	Role          *models.Role
}

// UpdateUser applies a partial update. The password is re-hashed only
// when a new plaintext value is supplied.
func UpdateUser(db *gorm.DB, id uint, upd UserUpdate) (*models.User, error) {
	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, id)
			}
			return err
		}

		if upd.Name != nil {
			user.Name = *upd.Name
		}
		if upd.ContactNumber != nil {
			user.ContactNumber = *upd.ContactNumber
		}
		if upd.Email != nil {
			user.Email = *upd.Email
		}
		if upd.Role != nil {
			if !upd.Role.Valid() {
				return fmt.Errorf("%w: user_type must be student or staff", ErrValidation)
			}
			user.Role = *upd.Role
		}
		if upd.Password != nil {
			hash, err := auth.HashPassword(*upd.Password)
			if err != nil {
				return err
			}
			user.Password = hash
		}

		if err := tx.Save(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account. An account with open loans cannot be
// deleted; its returned history does not block deletion.
func DeleteUser(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, id)
			}
			return err
		}

		var open int64
		if err := tx.Model(&models.Transaction{}).
			Where("user_id = ? AND is_returned = ?", id, false).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return fmt.Errorf("%w: user has %d unreturned books", ErrHasOpenLoans, open)
		}

		return tx.Delete(&user).Error
	})
}
