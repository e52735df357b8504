package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError maps a BusinessError to the response contract: permanent kinds
// show the specific code, retryable kinds a generic try-again message.
func FromError(c *gin.Context, err error) {
	kind, ok := KindOf(err)
	if !ok {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch kind {
	case KindValidation:
		BadRequest(c, err.Error(), "Invalid request: "+err.Error())
	case KindNotFound:
		NotFound(c, err.Error(), "Not found: "+err.Error())
	case KindConfiguration:
		Write(c, http.StatusUnprocessableEntity, err.Error(), "Invalid configuration: "+err.Error())
	case KindConflict:
		Conflict(c, err.Error(), "The record changed underneath you. Try again.")
	case KindTransient:
		Write(c, http.StatusServiceUnavailable, err.Error(), "Temporarily unavailable. Try again.")
	default:
		Internal(c, "internal_error", "Something went wrong.")
	}
}
