package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Config carries the process-wide handles and settings.
type Config struct {
	DB           *sql.DB
	Port         string
	AcademicYear string
	JWTSecret    string
}

var AppConfig *Config

// Load reads .env (when present) and environment variables, then opens the
// database connection.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:         getenv("PORT", "8080"),
		AcademicYear: getenv("ACADEMIC_YEAR", "2025-2026"),
		JWTSecret:    getenv("JWT_SECRET", "beeline-account-secret-key"),
	}

	dsn := getenv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=beeline_account sslmode=disable")
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err := db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	log.Println("Database connected successfully")

	cfg.DB = db
	AppConfig = cfg
	return cfg
}

// GetDB returns the shared database handle.
func GetDB() *sql.DB {
	return AppConfig.DB
}

// JWTSecret returns the signing key for session tokens.
func JWTSecret() []byte {
	if AppConfig != nil && AppConfig.JWTSecret != "" {
		return []byte(AppConfig.JWTSecret)
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "beeline-account-secret-key"
	}
	return []byte(secret)
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
