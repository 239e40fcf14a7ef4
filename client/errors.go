package client

import (
	"errors"

	sdkerrors "github.com/nutritrack/nutritrack-client/client/internal/errors"
)

// Re-export shared SDK errors so callers compare against a single symbol.
type (
	HTTPError     = sdkerrors.HTTPError
	NetworkError  = sdkerrors.NetworkError
	ErrorCategory = sdkerrors.ErrorCategory
)

const (
	Recoverable   = sdkerrors.Recoverable
	Irrecoverable = sdkerrors.Irrecoverable
)

// ErrInvalidRequest is returned, wrapped, when a request fails client-side validation.
var ErrInvalidRequest = sdkerrors.ErrInvalidRequest

// AsHTTPError extracts an *HTTPError from err's chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

// IsStatus reports whether err is an HTTP error with the given status code.
func IsStatus(err error, code int) bool {
	he, ok := AsHTTPError(err)
	return ok && he.StatusCode == code
}

// IsIrrecoverable reports whether repeating the failed call unchanged is pointless.
func IsIrrecoverable(err error) bool { return sdkerrors.IsIrrecoverable(err) }
