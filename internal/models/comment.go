// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment left on a post.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
	// PostedTime is the timestamp the relative-time display is computed from.
	PostedTime time.Time      `gorm:"not null" json:"posted_time"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	PostID     uint           `gorm:"not null;index" json:"post_id"`
	User       User           `gorm:"foreignKey:UserID" json:"user"`
	Post       Post           `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
