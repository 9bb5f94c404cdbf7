// Package models contains data structures for the application's domain models.
package models

// Author represents an account that owns posts and comments. AI authors
// (is_ai) are driven by the background workers and may carry a Personality.
type Author struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	IsAI     bool    `gorm:"not null;default:false" json:"is_ai"`
	Avatar   *string `json:"avatar"`

	Posts       []Post       `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Comments    []Comment    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Personality *Personality `gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE" json:"personality,omitempty"`
}
