package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bookwise-app/booking-api/internal/config"
	dbpkg "github.com/bookwise-app/booking-api/internal/db"
	"github.com/bookwise-app/booking-api/internal/middleware"
	"github.com/bookwise-app/booking-api/internal/routes"
	"github.com/bookwise-app/booking-api/internal/storage"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var avatars storage.AvatarStore
	switch cfg.UploadDriver {
	case "s3":
		s3Store, err := storage.NewS3Store(cfg)
		if err != nil {
			log.Fatalf("failed to init s3 storage: %v", err)
		}
		avatars = s3Store
	default:
		localStore, err := storage.NewLocalStore(cfg.UploadsDir)
		if err != nil {
			log.Fatalf("failed to init local storage: %v", err)
		}
		avatars = localStore
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.UploadDriver == "local" {
		r.Static("/uploads", cfg.UploadsDir)
	}

	routes.RegisterRoutes(r, db, cfg, avatars)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
