package client

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// wrapTransportWithRequestID installs requestIDTransport as the outermost
// RoundTripper so the debug dump already shows the id.
func (c *Client) wrapTransportWithRequestID() {
	if _, already := c.http.Transport.(*requestIDTransport); already {
		return
	}
	c.http.Transport = &requestIDTransport{base: c.http.Transport}
}

// requestIDTransport stamps a fresh uuid on requests that lack one.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Header.Get(RequestIDHeader) != "" {
		return base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set(RequestIDHeader, uuid.NewString())
	return base.RoundTrip(cloned)
}
