// errors.go - Maps domain errors onto HTTP status codes

package handlers // Declares the package name

import (
	"errors"
	"net/http"
	"strconv"

	"go-library-backend/library" // Domain errors

	"github.com/gin-gonic/gin" // Gin web framework
)

// statusFor picks the response code for a domain error. Anything the
// domain layer did not classify is a storage failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, library.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, library.ErrValidation),
		errors.Is(err, library.ErrEmailTaken),
		errors.Is(err, library.ErrStaffCannotBorrow),
		errors.Is(err, library.ErrBookUnavailable),
		errors.Is(err, library.ErrAlreadyReturned),
		errors.Is(err, library.ErrHasOpenLoans):
		return http.StatusBadRequest
	case errors.Is(err, library.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the structured error response for a domain error.
func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// pathID parses the numeric :id path parameter. A non-numeric id can
// never match a record, so it reports not found rather than a parse error.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return 0, false
	}
	return uint(id), true
}
