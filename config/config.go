// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"      // For reading environment variables
	"strconv" // For parsing numeric env values
	"time"    // For token lifetime parsing

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	DBPath          string        // Path (DSN) of the SQLite database file
	Port            string        // Port the HTTP server listens on
	JWTSecret       string        // Secret key for JWT authentication
	TokenTTL        time.Duration // How long issued tokens stay valid
	FineRatePerDay  float64       // Fine charged per overdue day
	GracePeriodDays int           // Days a borrower may keep a book before fines start
	CreateAdmin     bool          // Whether to seed a default librarian account
	AdminEmail      string        // Email of the seeded librarian
	AdminPassword   string        // Password of the seeded librarian
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present; a missing file is not an error

	return &Config{
		// The busy_timeout keeps concurrent writers waiting on the lock
		// instead of failing with SQLITE_BUSY.
		DBPath:          getEnv("DB_PATH", "library.db?_busy_timeout=5000"),
		Port:            getEnv("PORT", "8080"),
		JWTSecret:       getEnv("JWT_SECRET", "supersecret"),
		TokenTTL:        getEnvDuration("TOKEN_TTL", 72*time.Hour),
		FineRatePerDay:  getEnvFloat("FINE_RATE_PER_DAY", 5),
		GracePeriodDays: getEnvInt("GRACE_PERIOD_DAYS", 15),
		CreateAdmin:     getEnvBool("CREATE_ADMIN", false),
		AdminEmail:      getEnv("ADMIN_EMAIL", "librarian@library.local"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
