package server

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Error contains HTTP status and error message.
type Error struct {
	Status  int    `json:"status" msgpack:"status"`                       // HTTP status
	Message string `json:"message,omitempty" msgpack:"message,omitempty"` // error message
	Details string `json:"details,omitempty" msgpack:"details,omitempty"` // error details
}

// NewError creates new server error using status and message.
func NewError(status int, message string) *Error {
	return &Error{
		Status:  status,
		Message: message,
	}
}

// Error gets the error as a string.
func (err *Error) Error() string {
	if len(err.Details) != 0 {
		return fmt.Sprintf("%d %s (%s)", err.Status, err.Message, err.Details)
	}
	return fmt.Sprintf("%d %s", err.Status, err.Message)
}

// WithDetails adds additional details to the error.
func (err *Error) WithDetails(details string) *Error {
	err.Details = details
	return err
}

// RecoverFromPanic checks panics and reports them via HTTP response
// in the format the client accepts.
func RecoverFromPanic(ctx *gin.Context) {
	if r := recover(); r != nil {
		var err *Error
		switch v := r.(type) {
		case *Error:
			log.WithError(v).Warnf("panic recover: server error")
			err = v // report "as is"
		case error:
			log.WithError(v).Warnf("panic recover: error")
			log.Debugf("stack trace:\n%s", debug.Stack())
			err = NewError(http.StatusInternalServerError, v.Error())
		default:
			log.WithField("error", r).Warnf("panic recover: object")
			log.Debugf("stack trace:\n%s", debug.Stack())
			err = NewError(http.StatusInternalServerError, fmt.Sprintf("%+v", r))
		}

		writeResponse(ctx, err.Status, err)
	}
}
