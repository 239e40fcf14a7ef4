package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	sdkerrors "github.com/nutritrack/nutritrack-client/client/internal/errors"
	"github.com/nutritrack/nutritrack-client/client/internal/types"
)

const contentTypeJSON = "application/json"

// statusCheck reports whether a response status is a success for an operation.
type statusCheck func(int) bool

func is2xx(code int) bool { return code >= 200 && code <= 299 }

func exactly(want int) statusCheck {
	return func(code int) bool { return code == want }
}

// newRequest builds a request with a JSON body when body is non-nil.
// Content-Type is only set when withContentType is true.
func newRequest(ctx context.Context, method, url, token string, body any, withContentType bool) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return nil, err
	}
	if withContentType {
		httpReq.Header.Set("Content-Type", contentTypeJSON)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	return httpReq, nil
}

// do sends httpReq and decodes the response into out when ok accepts the
// status. Any other status becomes a *HTTPError. A nil out or an empty
// body leaves out untouched.
func do(httpClient types.HTTPClient, httpReq *http.Request, op string, ok statusCheck, out any) error {
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := httpReq.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return sdkerrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !ok(resp.StatusCode) {
		return sdkerrors.FromResponse(op, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
