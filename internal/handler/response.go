package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/vittimendes/fluxo-pro-connect-sub001/pkg/errors"
)

// ContextUserID is the gin context key under which the auth middleware
// stores the resolved acting user.
const ContextUserID = "userID"

type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
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

// UserID returns the acting user set by the auth middleware.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// Error translates an application error into the HTTP response. Validation
// failures carry their field map; everything unrecognized is a 500.
func Error(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case apperrors.ErrNotFound:
		status = http.StatusNotFound
	case apperrors.ErrBadRequest:
		status = http.StatusBadRequest
	case apperrors.ErrValidation:
		status = http.StatusBadRequest
	case apperrors.ErrUnauthorized:
		status = http.StatusUnauthorized
	}

	c.JSON(status, &Response{
		Status:  "error",
		Message: appErr.Message,
		Fields:  appErr.Fields,
	})
}
