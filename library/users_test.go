// users_test.go - Tests for registration, authentication and user CRUD

package library

import (
	"testing" // Go's testing package

	"go-library-backend/auth"   // Password types
	"go-library-backend/models" // Library models

	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For fatal assertions
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := setupTestDB(t, "test_users.db")

	user := newStudent(t, db, "alice@test.com")
	assert.Equal(t, 0.0, user.FineDue) // Fine balance starts at zero
	assert.NotEqual(t, auth.Hash("studentpass"), user.Password)

	got, err := Authenticate(db, "alice@test.com", auth.Plaintext("studentpass"))
	require.NoError(t, err)
	assert.Equal(t, user.UserID, got.UserID)

	_, err = Authenticate(db, "alice@test.com", auth.Plaintext("wrongpass"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(db, "nobody@test.com", auth.Plaintext("studentpass"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t, "test_users_dup.db")

	first := newStudent(t, db, "dup@test.com")

	_, err := RegisterUser(db, RegisterInput{
		Name:     "Second Account",
		Email:    "dup@test.com",
		Password: auth.Plaintext("otherpass"),
		Role:     models.RoleStudent,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The first registration is intact
	got, err := GetUser(db, first.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Test Student", got.Name)

	users, err := ListUsers(db)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t, "test_users_validate.db")

	_, err := RegisterUser(db, RegisterInput{Email: "x@test.com", Password: "p", Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrValidation) // Missing name

	_, err = RegisterUser(db, RegisterInput{Name: "X", Password: "p", Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrValidation) // Missing email

	_, err = RegisterUser(db, RegisterInput{Name: "X", Email: "x@test.com", Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrValidation) // Missing password

	_, err = RegisterUser(db, RegisterInput{Name: "X", Email: "x@test.com", Password: "p", Role: "admin"})
	assert.ErrorIs(t, err, ErrValidation) // Unknown role
}

func TestUpdateUserPartial(t *testing.T) {
	db := setupTestDB(t, "test_users_update.db")
	user := newStudent(t, db, "update@test.com")

	name := "Renamed Student"
	updated, err := UpdateUser(db, user.UserID, UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Student", updated.Name)
	assert.Equal(t, "update@test.com", updated.Email)   // Untouched
	assert.Equal(t, user.Password, updated.Password)    // Not re-hashed

	// A supplied password is hashed before storage
	newPass := auth.Plaintext("freshpass")
	updated, err = UpdateUser(db, user.UserID, UserUpdate{Password: &newPass})
	require.NoError(t, err)
	assert.NotEqual(t, user.Password, updated.Password)
	assert.True(t, updated.Password.Verify(newPass))

	badRole := models.Role("admin")
	_, err = UpdateUser(db, user.UserID, UserUpdate{Role: &badRole})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = UpdateUser(db, 9999, UserUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUserWithOpenLoan(t *testing.T) {
	db := setupTestDB(t, "test_users_delete.db")
	user := newStudent(t, db, "delete@test.com")
	book := newBook(t, db, 1, 1)

	txn, err := BorrowBook(db, user.UserID, book.BookID)
	require.NoError(t, err)

	// An account with an open loan cannot be deleted
	assert.ErrorIs(t, DeleteUser(db, user.UserID), ErrHasOpenLoans)

	// Once the loan closes, deletion goes through
	_, err = ReturnBook(db, txn.TransactionID)
	require.NoError(t, err)
	require.NoError(t, DeleteUser(db, user.UserID))

	_, err = GetUser(db, user.UserID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingUser(t *testing.T) {
	db := setupTestDB(t, "test_users_delete_missing.db")
	newStudent(t, db, "untouched@test.com")

	assert.ErrorIs(t, DeleteUser(db, 9999), ErrNotFound)

	// Storage is unchanged
	users, err := ListUsers(db)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
