package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/clinicscribe/scribe-api/pkg/errors"
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

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// StatusForError maps the application error taxonomy to HTTP statuses.
func StatusForError(err error) int {
	switch apperrors.Code(err) {
	case apperrors.ErrValidation, apperrors.ErrUnsupportedFormat:
		return http.StatusBadRequest
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrUniqueViolation:
		return http.StatusConflict
	case apperrors.ErrTranscription, apperrors.ErrSummarization:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as a JSON response with the mapped status.
func Error(c *gin.Context, err error) {
	c.JSON(StatusForError(err), NewErrorResponse(err.Error()))
}
