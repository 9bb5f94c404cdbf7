package models

import "time"

// Comment is a reply to a Post. Like posts, comments are immutable after
// creation and carry a server-assigned timestamp.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`

	Author Author `gorm:"foreignKey:AuthorID" json:"author"`
}
