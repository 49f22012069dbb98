package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with the payload as-is.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 with the payload as-is.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends 400 with a message body.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrResp{Message: err.Error()})
}

// NotFound sends 404 with a message body.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrResp{Message: message})
}

// TooManyRequests sends 429 with a message body.
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, ErrResp{Message: message})
}

// InternalError sends 500 with a generic message, never the underlying error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrResp{Message: DefaultErrorMessage})
}
