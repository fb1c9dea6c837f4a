// main.go - Entry point for the library backend server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"go-library-backend/config"     // Project config management
	"go-library-backend/database"   // Database connection and setup
	"go-library-backend/handlers"   // HTTP handlers for API endpoints
	"go-library-backend/library"    // Domain operations (used by seeding)
	"go-library-backend/metrics"    // Prometheus scrape endpoint
	"go-library-backend/middleware" // Middleware (authentication)
	"go-library-backend/models"     // Library models

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/spf13/cobra"   // Command-line interface
)

// newRouter wires every API route. Registration and login are public;
// everything else sits behind the bearer-token middleware.
func newRouter() *gin.Engine {
	r := gin.Default() // Create a new Gin router (web server)

	// Public routes (no authentication required)
	r.POST("/login", handlers.Login)    // Public route: user login
	r.POST("/users", handlers.Register) // Public route: user registration

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Protected routes (require a valid bearer token)
	api := r.Group("/")                  // Route group for protected endpoints
	api.Use(middleware.AuthMiddleware()) // Apply token authentication middleware
	{
		api.GET("/users", handlers.ListUsers)         // List all users
		api.GET("/users/:id", handlers.GetUser)       // Fetch one user
		api.PUT("/users/:id", handlers.UpdateUser)    // Partial update
		api.DELETE("/users/:id", handlers.DeleteUser) // Delete a user

		api.POST("/books", handlers.AddBook)          // Add a catalog entry
		api.GET("/books", handlers.ListBooks)         // List the catalog
		api.GET("/books/:id", handlers.GetBook)       // Fetch one book
		api.DELETE("/books/:id", handlers.DeleteBook) // Delete a book

		api.POST("/transactions", handlers.Borrow)                 // Borrow a book
		api.GET("/transactions", handlers.ListTransactions)        // List loan records
		api.PUT("/transactions/:id/return", handlers.Return)       // Return a book
		api.DELETE("/transactions/:id", handlers.DeleteTransaction) // Delete a loan record
	}

	return r
}

var rootCmd = &cobra.Command{ // Root command for the CLI
	Use:   "library-backend",
	Short: "Library management REST backend",
}

var serveCmd = &cobra.Command{ // serve - run the HTTP API server
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load() // Load configuration (DB path, JWT secret, fine policy)

		if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database
			return err
		}

		return newRouter().Run(":" + cfg.Port) // Start the web server
	},
}

var seedCmd = &cobra.Command{ // seed - load a starter catalog into an empty database
	Use:   "seed",
	Short: "Load a starter catalog into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if err := database.Connect(cfg.DBPath); err != nil {
			return err
		}

		var count int64
		if err := database.DB.Model(&models.Book{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("seed: catalog already has %d books, nothing to do", count)
			return nil
		}

		starter := []library.BookInput{
			{Title: "1984", Author: "George Orwell", Edition: "1st", TotalCopies: 4, AvailableCopies: 4, Cost: 12.50, Source: "purchase"},
			{Title: "Animal Farm", Author: "George Orwell", Edition: "2nd", TotalCopies: 3, AvailableCopies: 3, Cost: 9.00, Source: "purchase"},
			{Title: "The Art of War", Author: "Sun Tzu", Edition: "Translated", TotalCopies: 2, AvailableCopies: 2, Cost: 7.25, Source: "donation"},
			{Title: "Romeo and Juliet", Author: "William Shakespeare", Edition: "Folger", TotalCopies: 5, AvailableCopies: 5, Cost: 6.75, Source: "purchase"},
			{Title: "The Three Musketeers", Author: "Alexandre Dumas", Edition: "Penguin Classics", TotalCopies: 2, AvailableCopies: 2, Cost: 11.00, Source: "donation"},
		}
		for _, b := range starter {
			if _, err := library.AddBook(database.DB, b); err != nil {
				return err
			}
			log.Printf("seed: added %q by %s", b.Title, b.Author)
		}

		return nil
	},
}

func main() { // Main function, program entry point
	rootCmd.AddCommand(serveCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err) // If error, log and exit
	}
}
