package models

import (
	"time"
)

// NotificationType discriminates what ReferenceID points at.
type NotificationType string

const (
	NotificationLike    NotificationType = "LIKE"
	NotificationComment NotificationType = "COMMENT"
	NotificationFollow  NotificationType = "FOLLOW"
)

// Notification is an unread/read event record for a user. ReferenceID is the
// id of the like, comment, or follower that triggered it; Type determines
// which table it refers to, so there is no foreign key on it.
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	UserID      uint             `gorm:"not null;index" json:"user_id"`
	Type        NotificationType `gorm:"not null" json:"type"`
	ReferenceID uint             `gorm:"not null" json:"reference_id"`
	Read        bool             `gorm:"not null;default:false" json:"read"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
