package models

import "time"

// Comment belongs to one user (the author) and one post.
type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CommentText string    `json:"comment_text" gorm:"type:text;not null"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	PostID      uint      `json:"post_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Comment) TableName() string {
	return "comment"
}
