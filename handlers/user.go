// user.go - Handles registration, login and user CRUD

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes

	"go-library-backend/auth"     // Token issuing and password types
	"go-library-backend/database" // Database connection
	"go-library-backend/library"  // Domain operations
	"go-library-backend/models"   // Library models

	"github.com/gin-gonic/gin" // Gin web framework
)

type RegisterInput struct { // Struct for registration input
	Name          string `json:"name" binding:"required"`     // Full name (required)
	ContactNumber string `json:"contact_number"`              // Phone number (optional)
	Email         string `json:"email" binding:"required"`    // Email (required)
	Password      string `json:"password" binding:"required"` // Password (required)
	UserType      string `json:"user_type" binding:"required"` // Role: student or staff (required)
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required"`    // Email (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

// UpdateUserInput carries a partial update; absent fields stay unchanged.
type UpdateUserInput struct {
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	UserType      *string `json:"user_type"`
}

func Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := library.RegisterUser(database.DB, library.RegisterInput{
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Password:      auth.Plaintext(input.Password),
		Role:          models.Role(input.UserType),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User added successfully", "user": user})
}

func Login(c *gin.Context) { // Handler for user login
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := library.Authenticate(database.DB, input.Email, auth.Plaintext(input.Password))
	if err != nil {
		fail(c, err) // 401 for bad credentials, 500 for storage failures
		return
	}
	token, err := auth.IssueToken(user.UserID, string(user.Role)) // Sign a token carrying id and role
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func ListUsers(c *gin.Context) { // Handler to list all users
	users, err := library.ListUsers(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func GetUser(c *gin.Context) { // Handler to fetch a single user
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := library.GetUser(database.DB, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func UpdateUser(c *gin.Context) { // Handler to partially update a user
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	upd := library.UserUpdate{
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
	}
	if input.Password != nil {
		p := auth.Plaintext(*input.Password)
		upd.Password = &p
	}
	if input.UserType != nil {
		r := models.Role(*input.UserType)
		upd.Role = &r
	}
	user, err := library.UpdateUser(database.DB, id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
}

func DeleteUser(c *gin.Context) { // Handler to delete a user
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := library.DeleteUser(database.DB, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
