package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"regexp"

	"github.com/rs/zerolog"
)

// debugTransport dumps every request and response at debug level.
//
// Enable it with WithDebugLogging(true) or by exporting NUTRITRACK_DEBUG=true
// (DEBUG=true also works). Bodies are logged verbatim; the bearer token in
// the Authorization header is redacted.
type debugTransport struct {
	base   http.RoundTripper
	logger *zerolog.Logger
}

var bearerLine = regexp.MustCompile(`(?mi)^(Authorization: Bearer )[^\r\n]*`)

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}
	l := dt.logger
	if l == nil {
		nop := zerolog.Nop()
		l = &nop
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		l.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redact(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		l.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		l.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

func redact(dump []byte) string {
	return bearerLine.ReplaceAllString(string(dump), "${1}[REDACTED]")
}

// debugLoggingRequested reports whether NUTRITRACK_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("NUTRITRACK_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
