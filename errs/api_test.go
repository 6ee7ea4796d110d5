package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErr_ErrorIncludesDetails(t *testing.T) {
	err := NewInvalidFieldError("author_name", "must not be empty")
	assert.Equal(t, "invalid field: Invalid field author_name: must not be empty", err.Error())
	assert.Equal(t, "author_name", err.Field)
	assert.True(t, IsInvalidFieldError(err))
	assert.False(t, IsMissingRequiredFieldError(err))
}

func TestApiErr_GetFullErrorFollowsCauses(t *testing.T) {
	inner := NewNotFound("project")
	outer := NewInternalErrorWithCause("load gallery", inner)
	assert.Equal(t, "load gallery: internal server error -> project not found", outer.GetFullError())
}

func TestNotFoundConstructorsMatchSentinel(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("project")))
	assert.True(t, IsBadRequest(NewBadRequestError("invalid projectID")))
}

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
	}{
		{"duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "projects_pkey"`), http.StatusConflict},
		{"sqlite unique", errors.New("UNIQUE constraint failed: comments.id"), http.StatusConflict},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection", errors.New("failed to connect: connection refused"), http.StatusServiceUnavailable},
		{"canceled", fmt.Errorf("wait: %w", context.Canceled), http.StatusRequestTimeout},
		{"generic", errors.New("syntax error"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("find", "project", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.ErrorIs(t, err.Cause, tt.cause)
		})
	}
}

func TestNewDatabaseError_PassesApiErrThrough(t *testing.T) {
	validation := NewMissingRequiredFieldError("message")
	assert.Same(t, validation, NewDatabaseError("add", "comment", validation))
}
