// Command seed runs the database seeder for Focal.
package main

import (
	"flag"
	"log"

	"focal/internal/config"
	"focal/internal/database"
	"focal/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPhotos := flag.Int("photos", 150, "Number of photos to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPhotos:   *numPhotos,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All test users have the password: password123")
}
