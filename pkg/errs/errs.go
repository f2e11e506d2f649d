package errs

import (
	"fmt"
	"net/http"
)

// Err represents structure of a custom error
type Err struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e Err) Error() string {
	return fmt.Sprintf("%s : %s ", e.Code, e.Message)
}

// Error represents a json-encoded API error.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}

var (
	// ErrInvalidHost is returned when the jenkins base url cannot be built.
	ErrInvalidHost = New("Couldn't connect to Jenkins Host")
	// ErrInvalidURL is returned when a coverage url cannot be built for a job.
	ErrInvalidURL = New("Malformed Jenkins URL")
	// ErrJobRequiresParameters is returned on a 400 from jenkins.
	ErrJobRequiresParameters = New("Job requires parameters to build")
	// ErrNotAuthorized is returned on a 403 from jenkins.
	ErrNotAuthorized = New("Session not authorized")
	// ErrNotFound is returned on a 404 from jenkins.
	ErrNotFound = New("Resource not found")
	// ErrUnknown is returned for every other non successful response.
	ErrUnknown = New("Unknown error")
	// ErrInvalidDocument is returned when a response body is not valid json.
	ErrInvalidDocument = New("invalid json document")
	// ErrNoReport is returned when a document carries no coverage report.
	ErrNoReport = New("no coverage report produced")
	// ErrInvalidLoggerInstance is returned when logger instance is not supported.
	ErrInvalidLoggerInstance = New("Invalid logger instance")
	// ErrUnsupportedOutput is returned for an unknown render format.
	ErrUnsupportedOutput = New("unsupported output format")
	// GenericErrRemark returns a generic error message for user facing errors.
	GenericErrRemark = New("Unexpected error")
)

// FromStatusCode maps a jenkins http status to an error, nil for 2xx.
func FromStatusCode(statusCode int) error {
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		return nil
	case statusCode == http.StatusBadRequest:
		return ErrJobRequiresParameters
	case statusCode == http.StatusForbidden:
		return ErrNotAuthorized
	case statusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrUnknown
	}
}

// ErrInvalidConf is returned when a configuration fails validation.
type ErrInvalidConf struct {
	Message string
	Fields  []string
	Values  []interface{}
}

func (e *ErrInvalidConf) Error() string {
	msg := e.Message
	for i, field := range e.Fields {
		msg += fmt.Sprintf("%s: %v\n", field, e.Values[i])
	}
	return msg
}
