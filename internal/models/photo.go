package models

import (
	"time"
)

// Photo represents an uploaded photo. The binary lives in the blob store;
// URL is the only reference to it.
type Photo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Filename  string    `gorm:"not null" json:"filename"`
	URL       string    `gorm:"not null" json:"url"`
	Caption   string    `json:"caption,omitempty"`
	Hashtags  []string  `gorm:"serializer:json" json:"hashtags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
