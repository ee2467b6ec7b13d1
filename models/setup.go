package models

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	// Local development reads .env; in production the variables come
	// from the platform, so a missing file is not an error.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("FATAL ERROR: DATABASE_URL is not set")
	}

	// TranslateError turns the driver's duplicate-key error into
	// gorm.ErrDuplicatedKey, which the attendance store relies on for
	// the idempotent same-day path.
	db, err := gorm.Open(mysql.Open(dbURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&Student{}, &FaceEncoding{}, &Attendance{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	log.Println("Database connected.")
	DB = db
}
