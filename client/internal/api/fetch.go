package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/nutritrack/nutritrack-client/client/internal/types"
)

// Fetch issues a request to baseURL+path. Content-Type is always JSON; the
// body is only sent when opts.Body is non-nil. Any 2xx is a success and the
// JSON response is decoded into out. An empty path requests the base URL root.
func Fetch(ctx context.Context, httpClient types.HTTPClient, baseURL, path string, opts types.FetchOptions, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := newRequest(ctx, strings.ToUpper(method), baseURL+path, opts.Token, opts.Body, true)
	if err != nil {
		return err
	}
	return do(httpClient, httpReq, "fetch "+path, is2xx, out)
}
