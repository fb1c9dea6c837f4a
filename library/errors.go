// errors.go - Typed domain errors for the library service

package library // Declares the package name

import "errors"

// Domain rule failures. Handlers match these with errors.Is and map them
// onto HTTP status codes; wrapped variants carry field-level detail.
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStaffCannotBorrow  = errors.New("staff cannot borrow books")
	ErrBookUnavailable    = errors.New("book not available")
	ErrAlreadyReturned    = errors.New("book already returned")
	ErrHasOpenLoans       = errors.New("record has open loans")
)
