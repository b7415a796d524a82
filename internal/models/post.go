// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a blog post in the Inkwell application.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"unique;not null" json:"title"`
	Subtitle string `gorm:"not null" json:"subtitle"`
	Body     string `gorm:"type:text;not null" json:"body"`
	ImageURL string `gorm:"not null" json:"image_url"`
	// Date is the human-readable publication date shown in bylines,
	// frozen at creation time ("January 2, 2006").
	Date      string         `gorm:"not null" json:"date"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Comments  []Comment      `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
