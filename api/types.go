package api

import (
	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/jrmferreira/construcoes-backend/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	contactHandler contactHandler
	siteHandler    siteHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"author_name"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ProjectCollection is the catalogue in insertion order.
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
}

// CommentCollection holds one project's comments, oldest first.
type CommentCollection struct {
	Comments []models.Comment `json:"comments"`
	Total    int              `json:"total"`
}

// CommentRequest is the body of POST /project/{projectID}/comments.
type CommentRequest struct {
	AuthorName string `json:"author_name"`
	Message    string `json:"message"`
}

type FieldValidationRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type FieldValidationResponse struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ContactSubmitResponse carries the submit outcome; Error is set when the form was rejected.
type ContactSubmitResponse struct {
	services.SubmitResult
	Error string `json:"error,omitempty"`
}

type LinkResponse struct {
	Link string `json:"link"`
}

type HighlightsResponse struct {
	Highlights []models.Highlight `json:"highlights"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}
