package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/task"
	"voice-task-management/pkg/response"
)

// mapError translates domain errors into HTTP responses. Not-found is kept
// distinct from validation failure; everything else is an opaque 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, "Task not found")
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority):
		response.BadRequest(c, err)
	default:
		response.InternalError(c)
	}
}
