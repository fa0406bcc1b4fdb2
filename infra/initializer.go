package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize loads .env into the process environment when present.
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}
}
