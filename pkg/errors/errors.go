package errors

import "fmt"

// HTTPError is an error that carries the HTTP status it should render as.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) String() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
