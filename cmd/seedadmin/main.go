package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/bookwise-app/booking-api/internal/auth"
	"github.com/bookwise-app/booking-api/internal/config"
	dbpkg "github.com/bookwise-app/booking-api/internal/db"
	"github.com/bookwise-app/booking-api/internal/models"
)

// Seeds the administrator account. Safe to run repeatedly: if the
// admin email already exists nothing is written.
func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ?", cfg.SeedAdminEmail).
		Count(&count).Error; err != nil {
		log.Fatalf("failed to check existing admin: %v", err)
	}
	if count > 0 {
		log.Println("Admin already exists")
		return
	}

	hashed, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin := models.User{
		Name:         cfg.SeedAdminName,
		Email:        cfg.SeedAdminEmail,
		PasswordHash: hashed,
		IsAdmin:      true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	log.Printf("Admin user seeded (id=%d)", admin.ID)
}
