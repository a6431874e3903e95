// Package apierr is the error taxonomy shared by all handlers. Every
// failure crossing a handler boundary is one of these; nothing else
// reaches the client.
package apierr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func Invalid(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Conflict reports a uniqueness violation. It maps to 400 rather than
// 409 to keep the one documented client contract: any rejected input
// is a 400 with a distinguishing message.
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Auth reports a credential mismatch. Same status as Conflict; the
// message carries the distinction.
func Auth(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Internal wraps a store or infrastructure failure. The cause is kept
// for server-side logging only; the client sees a fixed message.
func Internal(cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "internal server error", cause: cause}
}

// Respond writes the error envelope for err. Unclassified errors are
// treated as internal.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Internal(err)
	}
	if apiErr.cause != nil {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, apiErr.cause)
	}
	c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
}
