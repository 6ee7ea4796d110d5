package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jrmferreira/construcoes-backend/database"
	"github.com/jrmferreira/construcoes-backend/errs"
	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/jrmferreira/construcoes-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const commentNotificationSubject = "Novo comentário no portfólio"

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      database.Repository
	gallery   services.GalleryService
	notifier  services.Notifier
}

func newProjectHandler(repo database.Repository, gallery services.GalleryService, notifier services.Notifier) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()
	if notifier == nil {
		notifier = services.NopNotifier{}
	}

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		gallery:   gallery,
		notifier:  notifier,
	}
}

// parseProjectID reads the {projectID} URL param as a positive integer.
func parseProjectID(r *http.Request) (int, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return 0, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := strconv.Atoi(projectIDStr)
	if err != nil || projectID <= 0 {
		return 0, errs.NewBadRequestError("invalid projectID")
	}
	return projectID, nil
}

// getAllProjects retrieves the whole catalogue
// @Summary Get all projects
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectCollection "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.repo.ListProjects(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		projects, err = h.gallery.SignAll(r.Context(), projects)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} models.Project "Project details"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.repo.GetProject(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		signed, err := h.gallery.Sign(r.Context(), *project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, signed)
	}
}

// getComments lists a project's comments, oldest first. Unknown projects have none.
// @Summary Get project comments
// @Tags Comments
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} CommentCollection "Comments"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Router /project/{projectID}/comments [get]
func (h projectHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.repo.ListComments(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}

		h.responder.WriteJSON(w, CommentCollection{
			Comments: comments,
			Total:    len(comments),
		})
	}
}

// addComment stores a visitor comment and tells the owner about it
// @Summary Add comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param comment body CommentRequest true "Comment"
// @Success 201 {object} models.Comment "Stored comment"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid comment"
// @Router /project/{projectID}/comments [post]
func (h projectHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req CommentRequest
		if err := decodeJSON(r, "comment", &req); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, err)
			return
		}

		comment, err := h.repo.AddComment(r.Context(), models.CommentInput{
			ProjectID:  projectID,
			AuthorName: req.AuthorName,
			Message:    req.Message,
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create comment", "comment", err))
			return
		}

		body := fmt.Sprintf("Projeto #%d\n%s escreveu:\n%s", comment.ProjectID, comment.AuthorName, comment.Message)
		if err := h.notifier.Notify(r.Context(), commentNotificationSubject, body); err != nil {
			h.logger.Error().Err(err).Int("commentID", comment.ID).Msg("Failed to send comment notification")
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, comment)
	}
}
