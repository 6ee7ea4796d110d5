package database

import (
	"context"

	"github.com/jrmferreira/construcoes-backend/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *CommentRepo) GetDB() *gorm.DB {
	return r.db
}

// FindByProject returns the comments of one project in stored order
func (r *CommentRepo) FindByProject(ctx context.Context, projectID int) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&comments).Error
	return comments, err
}

// NextID returns max(id)+1, or 1 for an empty table
func (r *CommentRepo) NextID(ctx context.Context) (int, error) {
	var maxID int
	err := r.db.WithContext(ctx).Model(&models.Comment{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error
	return maxID + 1, err
}

// Add inserts a comment that already carries its ID and CreatedAt
func (r *CommentRepo) Add(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
