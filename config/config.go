package config

import (
	"log"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

// JWT_KEY is shared by the auth controller and the middleware.
var JWT_KEY []byte

// JWTClaims is the payload carried inside a session token.
type JWTClaims struct {
	StudentId int64  `json:"student_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

func init() {
	// Local development reads .env; deployed environments provide the
	// variables directly, so a missing file is fine.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables.")
	}

	key := os.Getenv("JWT_KEY")
	if key == "" {
		log.Fatal("FATAL ERROR: JWT_KEY is not set")
	}
	JWT_KEY = []byte(key)
}
