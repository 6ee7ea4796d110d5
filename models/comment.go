package models

import "time"

// Comment is a visitor's note on a project. Comments are never edited or deleted.
type Comment struct {
	ID         int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement:false"`
	ProjectID  int       `json:"project_id" db:"project_id" gorm:"not null;index:idx_comment_project_id"`
	AuthorName string    `json:"author_name" db:"author_name" gorm:"type:text;not null"`
	Message    string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}

// CommentInput is what a visitor submits; the store assigns ID and CreatedAt.
type CommentInput struct {
	ProjectID  int    `json:"project_id"`
	AuthorName string `json:"author_name"`
	Message    string `json:"message"`
}
