// Package errors provides the typed failures returned by the client SDK.
// HTTP failures carry the status code and body so callers can inspect them
// without holding on to the raw response.
package errors

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrorCategory tells callers whether repeating the same request could succeed.
// The SDK itself never retries.
type ErrorCategory int

const (
	// Recoverable errors may succeed if the request is repeated later.
	// Examples: 500 Internal Server Error, 429 Too Many Requests, connection resets.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors will fail again unless the request changes.
	// Examples: 401 Unauthorized, 403 Forbidden, 400 Bad Request.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ErrInvalidRequest wraps client-side validation failures.
var ErrInvalidRequest = errors.New("invalid request")

// HTTPError is returned when the backend answers with a status the
// operation does not accept.
type HTTPError struct {
	Op         string // operation name, e.g. "create meal"
	Category   ErrorCategory
	StatusCode int
	Body       string // raw response body
	Decoded    any    // Body parsed as JSON, nil when it does not parse
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: [%s] HTTP %d: %s", e.Op, e.Category, e.StatusCode, truncate(e.Body, 256))
	}
	return fmt.Sprintf("%s: [%s] HTTP %d", e.Op, e.Category, e.StatusCode)
}

// NetworkError wraps transport-level failures. They carry no status code.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s network error: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *NetworkError) Unwrap() error { return e.Err }

// IsIrrecoverable reports whether err is an HTTP error that will fail again
// if repeated unchanged. Network errors are always recoverable.
func IsIrrecoverable(err error) bool {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Category == Irrecoverable
	}
	return false
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
