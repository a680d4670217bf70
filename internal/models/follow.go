package models

import (
	"time"
)

// Follow is a directed edge: follower sees following's photos in their feed.
// Uniqueness and the no-self-follow rule are enforced in the follow service;
// the composite primary key backs the race loser up with a constraint error.
type Follow struct {
	FollowerID  uint      `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FollowingID uint      `gorm:"primaryKey;autoIncrement:false" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
