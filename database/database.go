package database

import (
	"context"
	"time"

	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Database struct {
	db          *gorm.DB
	projectRepo *ProjectRepo
	commentRepo *CommentRepo
	now         func() time.Time
}

var _ Repository = Database{}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		projectRepo: NewProjectRepo(db),
		commentRepo: NewCommentRepo(db),
		now:         time.Now,
	}
}

// WithClock returns a copy that stamps new comments with now.
func (d Database) WithClock(now func() time.Time) Database {
	d.now = now
	return d
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) ListProjects(ctx context.Context) ([]models.Project, error) {
	return d.projectRepo.FindAll(ctx)
}

func (d Database) GetProject(ctx context.Context, id int) (*models.Project, error) {
	return d.projectRepo.FindByID(ctx, id)
}

func (d Database) ListComments(ctx context.Context, projectID int) ([]models.Comment, error) {
	return d.commentRepo.FindByProject(ctx, projectID)
}

// AddComment assigns the next id, inserts the comment and bumps the project's
// count in one transaction. A missing project leaves the comment stored and no
// count changed.
func (d Database) AddComment(ctx context.Context, input models.CommentInput) (*models.Comment, error) {
	input, err := normalizeCommentInput(input)
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		projects := NewProjectRepo(tx)
		comments := NewCommentRepo(tx)

		id, err := comments.NextID(ctx)
		if err != nil {
			return err
		}

		comment = models.Comment{
			ID:         id,
			ProjectID:  input.ProjectID,
			AuthorName: input.AuthorName,
			Message:    input.Message,
			CreatedAt:  d.now().UTC(),
		}
		if err := comments.Add(ctx, &comment); err != nil {
			return err
		}

		matched, err := projects.IncrementComments(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		if !matched {
			log.Warn().Int("projectID", input.ProjectID).Int("commentID", id).Msg("Comment stored for unknown project; count not updated")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
