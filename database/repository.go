package database

import (
	"context"
	"strings"

	"github.com/jrmferreira/construcoes-backend/errs"
	"github.com/jrmferreira/construcoes-backend/models"
)

// Repository is the data access contract the project gallery depends on.
// GetProject returns (nil, nil) when no project has the given id.
type Repository interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id int) (*models.Project, error)
	ListComments(ctx context.Context, projectID int) ([]models.Comment, error)
	AddComment(ctx context.Context, input models.CommentInput) (*models.Comment, error)
}

// normalizeCommentInput trims author and message and rejects blank values.
// Whether the project exists is not checked here: a comment on an unknown
// project is stored without touching any project's count.
func normalizeCommentInput(input models.CommentInput) (models.CommentInput, error) {
	input.AuthorName = strings.TrimSpace(input.AuthorName)
	input.Message = strings.TrimSpace(input.Message)

	if input.ProjectID <= 0 {
		return input, errs.NewInvalidFieldError("project_id", "must be a positive integer")
	}
	if input.AuthorName == "" {
		return input, errs.NewMissingRequiredFieldError("author_name")
	}
	if input.Message == "" {
		return input, errs.NewMissingRequiredFieldError("message")
	}
	return input, nil
}
