package client

import (
	"errors"
	"fmt"
	"net/http"
)

// UnexpectedResponseError is returned when the server answered with a status
// other than the one the operation declares. Response.Body is buffered and
// can be read again.
type UnexpectedResponseError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
	Response   *http.Response
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, truncate(string(e.Body), 200))
}

// RequestError is returned when the request could not be built or sent, or
// when a success response could not be read or decoded.
type RequestError struct {
	Method string
	Path   string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by an *UnexpectedResponseError
// in err's chain, or 0.
func StatusCode(err error) int {
	var ue *UnexpectedResponseError
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is an unexpected 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
