// auth.go - Bearer-token authentication middleware
//
// Authentication Flow:
// 1. Extract the token from the Authorization header
// 2. Validate signature and expiration
// 3. Store the caller's user ID and role in the context for handlers
//
// Every protected route runs this before its handler; a missing or
// invalid token is rejected with 401 before any handler logic runs.

package middleware // Declares the package name

import (
	"net/http" // HTTP status codes
	"strings"  // Header parsing

	"go-library-backend/auth"    // Token verification
	"go-library-backend/metrics" // Auth failure counter

	"github.com/gin-gonic/gin" // Gin web framework
)

// AuthMiddleware - Returns a Gin middleware function for bearer-token authentication
func AuthMiddleware() gin.HandlerFunc { // Returns a Gin middleware function
	return func(c *gin.Context) { // Middleware handler (runs before each request)
		// STEP 1: Extract Authorization header in "Bearer <token>" form
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			metrics.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		// STEP 2: Verify the token (signature, shape and expiry)
		claims, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			metrics.AuthFailuresTotal.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// STEP 3: Make the caller's identity available to handlers
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next() // Continue to next handler (authentication successful)
	}
}
