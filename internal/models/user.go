// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Photos    []Photo   `gorm:"foreignKey:UserID" json:"photos,omitempty"`
}

// UserProfile is the public profile shape returned by GET /api/users/:username.
type UserProfile struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio"`
	FollowersCount int64     `json:"followersCount"`
	FollowingCount int64     `json:"followingCount"`
	PhotosCount    int64     `json:"photosCount"`
	CreatedAt      time.Time `json:"createdAt"`
}
