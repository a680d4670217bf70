package repository

import (
	"testing"
	"time"

	"focal/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createTestPhoto(t *testing.T, db *gorm.DB, owner *models.User, caption string, createdAt time.Time, hashtags ...string) *models.Photo {
	t.Helper()
	if hashtags == nil {
		hashtags = []string{}
	}
	photo := &models.Photo{
		UserID:   owner.ID,
		Filename: "f.jpg",
		URL:      "https://blobs.test/bucket/1-f.jpg",
		Caption:  caption,
		Hashtags: hashtags,
	}
	if err := db.Create(photo).Error; err != nil {
		t.Fatalf("create photo: %v", err)
	}
	// Create ignores explicit CreatedAt zero values; set it afterwards so
	// ordering tests control the timeline.
	if !createdAt.IsZero() {
		if err := db.Model(photo).Update("created_at", createdAt).Error; err != nil {
			t.Fatalf("set created_at: %v", err)
		}
		photo.CreatedAt = createdAt
	}
	return photo
}
