package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"unsent/backend/internal/config"
	"unsent/backend/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "cleanup":
		// Defaults to the configured TTL; an explicit hour count overrides it.
		maxAge := config.StarTTL
		if len(os.Args) > 2 {
			hours, err := strconv.Atoi(os.Args[2])
			if err != nil {
				fmt.Println("Invalid age. Please provide hours as an integer.")
				os.Exit(1)
			}
			maxAge = time.Duration(hours) * time.Hour
		}
		deleted, err := storageSvc.DeleteStarsOlderThan(time.Now().UTC().Add(-maxAge))
		if err != nil {
			log.Fatalf("Error cleaning up stars: %v", err)
		}
		fmt.Printf("Deleted %d star(s) older than %s.\n", deleted, maxAge)
	case "deactivate-thread":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin deactivate-thread <thread_id>")
			os.Exit(1)
		}
		threadID := os.Args[2]
		if err := storageSvc.DeactivateThread(threadID); err != nil {
			log.Fatalf("Error deactivating thread: %v", err)
		}
		fmt.Printf("Thread %s has been deactivated.\n", threadID)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
