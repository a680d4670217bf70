package models

import (
	"time"
)

// Like marks that a user liked a photo, at most once per (user, photo).
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_photo" json:"user_id"`
	PhotoID   uint      `gorm:"not null;uniqueIndex:idx_likes_user_photo;index" json:"photo_id"`
	CreatedAt time.Time `json:"created_at"`
}
