package database

import (
	"context"
	"sync"
	"time"

	"github.com/jrmferreira/construcoes-backend/models"
)

// Latency is the artificial delay each MemoryRepo operation waits before answering.
type Latency struct {
	ListProjects time.Duration
	GetProject   time.Duration
	ListComments time.Duration
	AddComment   time.Duration
}

// DefaultLatency mimics a round trip to a hosted database.
var DefaultLatency = Latency{
	ListProjects: 300 * time.Millisecond,
	GetProject:   200 * time.Millisecond,
	ListComments: 200 * time.Millisecond,
	AddComment:   300 * time.Millisecond,
}

// MemoryRepo is an in-process Repository used for local development, demos and tests.
// Nothing survives a restart.
type MemoryRepo struct {
	mu       sync.Mutex
	projects []models.Project
	comments []models.Comment
	latency  Latency
	now      func() time.Time
}

var _ Repository = (*MemoryRepo)(nil)

type MemoryOption func(*MemoryRepo)

func WithLatency(l Latency) MemoryOption {
	return func(r *MemoryRepo) {
		r.latency = l
	}
}

func WithClock(now func() time.Time) MemoryOption {
	return func(r *MemoryRepo) {
		r.now = now
	}
}

// WithData replaces the seed catalogue.
func WithData(projects []models.Project, comments []models.Comment) MemoryOption {
	return func(r *MemoryRepo) {
		r.projects = projects
		r.comments = comments
	}
}

// NewMemoryRepo returns a store seeded with the launch catalogue and DefaultLatency.
func NewMemoryRepo(opts ...MemoryOption) *MemoryRepo {
	r := &MemoryRepo{
		projects: models.SeedProjects(),
		comments: models.SeedComments(),
		latency:  DefaultLatency,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	if err := wait(ctx, r.latency.ListProjects); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	projects := make([]models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		projects = append(projects, p.Clone())
	}
	return projects, nil
}

func (r *MemoryRepo) GetProject(ctx context.Context, id int) (*models.Project, error) {
	if err := wait(ctx, r.latency.GetProject); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.ID == id {
			project := p.Clone()
			return &project, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepo) ListComments(ctx context.Context, projectID int) ([]models.Comment, error) {
	if err := wait(ctx, r.latency.ListComments); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	comments := []models.Comment{}
	for _, c := range r.comments {
		if c.ProjectID == projectID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

// AddComment stores the comment with id max(existing)+1 and bumps the matching
// project's count. An unknown project id still stores the comment.
func (r *MemoryRepo) AddComment(ctx context.Context, input models.CommentInput) (*models.Comment, error) {
	input, err := normalizeCommentInput(input)
	if err != nil {
		return nil, err
	}
	if err := wait(ctx, r.latency.AddComment); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, c := range r.comments {
		if c.ID > maxID {
			maxID = c.ID
		}
	}

	comment := models.Comment{
		ID:         maxID + 1,
		ProjectID:  input.ProjectID,
		AuthorName: input.AuthorName,
		Message:    input.Message,
		CreatedAt:  r.now().UTC(),
	}
	r.comments = append(r.comments, comment)

	for i := range r.projects {
		if r.projects[i].ID == input.ProjectID {
			r.projects[i].CommentsCount++
			break
		}
	}

	return &comment, nil
}

// wait sleeps for d unless ctx ends first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
