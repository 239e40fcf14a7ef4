package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a failed response is kept on the error.
const maxErrorBody = 64 << 10

// ClassifyStatus maps HTTP status codes to error categories:
// - 4xx client errors (except 408 and 429) are irrecoverable
// - 5xx server errors are recoverable
// - anything else unexpected is treated as recoverable
func ClassifyStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewHTTPError builds a classified error from a status and body.
// Decoded is populated when body is valid JSON.
func NewHTTPError(op string, statusCode int, body []byte) *HTTPError {
	he := &HTTPError{
		Op:         op,
		Category:   ClassifyStatus(statusCode),
		StatusCode: statusCode,
		Body:       string(body),
	}
	if len(body) > 0 {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			he.Decoded = v
		}
	}
	return he
}

// FromResponse reads (a bounded prefix of) resp.Body and returns the
// matching HTTPError. The caller still owns closing the body.
func FromResponse(op string, resp *http.Response) *HTTPError {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		body = nil
	}
	return NewHTTPError(op, resp.StatusCode, body)
}

// NewNetworkError wraps a transport failure for op.
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// Invalid wraps a validation message in ErrInvalidRequest.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
