package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/notes-assistant/internal/domain/notes"
	apperrors "github.com/yanqian/notes-assistant/pkg/errors"
)

// HTTPError carries the status and envelope text for a failed request.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// fromFlowError maps a notes flow error onto a response: rejected input is a
// 400, anything else a 500. The message is the full error chain.
func fromFlowError(err error) *HTTPError {
	if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		return NewHTTPError(http.StatusBadRequest, "invalid_request", err.Error(), err)
	}
	return NewHTTPError(http.StatusInternalServerError, "generation_failed", err.Error(), err)
}

// envelope picks the body shape. Server errors carry success=false, client
// errors only the message.
func (e *HTTPError) envelope() any {
	message := e.Message
	if message == "" {
		message = e.Error()
	}
	if e.Status >= http.StatusInternalServerError {
		return notes.Failure{Success: false, Error: message}
	}
	return notes.ClientError{Error: message}
}

func asHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return NewHTTPError(http.StatusInternalServerError, "internal_error", "internal server error", err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	_ = c.Error(err)
	c.Abort()
}
