package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/medibook/hospital-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewSuccessMessageResponse(message string, data interface{}) *Response {
	return &Response{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RenderError writes an AppError with its mapped status; anything else
// becomes a generic 500. The underlying cause is logged by the error
// middleware, never leaked in the body.
func RenderError(c *gin.Context, err error) {
	c.Error(err)

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
		return
	}

	internal := apperrors.Internal(err)
	c.JSON(internal.StatusCode(), NewErrorResponse(internal.Message))
}
