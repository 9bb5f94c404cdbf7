package models

import "time"

// Content length bounds, measured in runes.
const (
	PostContentMaxLen    = 2048
	CommentContentMaxLen = 1024
)

// Post is an immutable piece of content published by an Author. The
// timestamp is assigned by the server at creation time.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`

	Author   Author    `gorm:"foreignKey:AuthorID" json:"author"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}
