package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"unsent/backend/internal/api/handler"
	"unsent/backend/internal/models"
	"unsent/backend/internal/sentiment"
	"unsent/backend/internal/starhub"
	"unsent/backend/internal/storage"
	"unsent/backend/internal/threads"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupDependencies() (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	dsn := envOr("DATABASE_DSN",
		"host=localhost user=user password=password dbname=unsentdb port=5432 sslmode=disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis (stars listing cache)
	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	err = db.AutoMigrate(
		&models.Star{},
		&models.Thread{},
		&models.ThreadStar{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Unsent Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	// 1. Dependencies
	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	// 2. Realtime hub and collaborators
	hub := starhub.NewHub(s)
	assigner := threads.NewAssigner(s)
	classifier := sentiment.NewLexiconClassifier()

	// 3. Gin routing
	r := gin.Default()
	h := handler.NewHandler(hub, s, classifier, assigner)

	r.GET("/", h.Health)
	r.POST("/submit", h.SubmitStar)
	r.GET("/stars", h.ListStars)
	r.GET("/thread/:star_id", h.GetThreadForStar)
	r.POST("/cleanup", h.CleanupStars)
	r.GET("/anonid", h.GetAnonID)  // anonymous ID + token
	r.GET("/ws", h.ServeWebSocket) // WebSocket upgrade

	server := &http.Server{
		Addr:    ":" + envOr("PORT", "8080"),
		Handler: r,
		// No Read/WriteTimeout here: /ws connections are long-lived.
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
