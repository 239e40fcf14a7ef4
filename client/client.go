package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nutritrack/nutritrack-client/client/internal/api"
	sdkerrors "github.com/nutritrack/nutritrack-client/client/internal/errors"
)

// DefaultBaseURL is used when New is given an empty base URL.
const DefaultBaseURL = "http://localhost:8000"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the meals backend. It holds no per-call state and is safe
// for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	token   string // default bearer token, used when a call passes none
	logger  zerolog.Logger
}

// New constructs a Client for baseURL. An empty baseURL selects
// DefaultBaseURL. Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransportWithRequestID()
	return c, nil
}

// BaseURL returns the origin every request is sent to.
func (c *Client) BaseURL() string { return c.baseURL }

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultBaseURL, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid base url %q: want http(s)://host[:port]", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

func (c *Client) tokenOr(token string) string {
	if token != "" {
		return token
	}
	return c.token
}

// observe records metrics for one call and logs failures at debug level.
func (c *Client) observe(op string, start time.Time, err error) {
	outcome := outcomeOf(err)
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(op, outcome).Inc()
	if err != nil {
		c.logger.Debug().Err(err).Str("op", op).Str("outcome", outcome).Str("base_url", c.baseURL).Msg("request failed")
	}
}

func outcomeOf(err error) string {
	var he *sdkerrors.HTTPError
	var ne *sdkerrors.NetworkError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &he):
		return strconv.Itoa(he.StatusCode)
	case errors.As(err, &ne):
		return "network"
	case errors.Is(err, sdkerrors.ErrInvalidRequest):
		return "invalid"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

// --------------------------------------------------------------------
// Generic request
// --------------------------------------------------------------------

// Fetch sends a request to BaseURL()+path and decodes the JSON response
// into out (which may be nil). Any 2xx status is a success; anything else
// returns an *HTTPError carrying the status and body.
func (c *Client) Fetch(ctx context.Context, path string, opts FetchOptions, out any) (err error) {
	defer func(start time.Time) { c.observe("fetch", start, err) }(time.Now())
	opts.Token = c.tokenOr(opts.Token)
	return api.Fetch(ctx, c.http, c.baseURL, path, opts, out)
}

// --------------------------------------------------------------------
// Food search
// --------------------------------------------------------------------

// SearchFoods searches the food catalogue. Country and Lang default to
// "BR" and "pt". token is optional.
func (c *Client) SearchFoods(ctx context.Context, req SearchFoodsRequest, token string) (foods []Food, err error) {
	defer func(start time.Time) { c.observe("search_foods", start, err) }(time.Now())
	return api.SearchFoods(ctx, c.http, c.baseURL, req, c.tokenOr(token))
}

// --------------------------------------------------------------------
// Meal operations
// --------------------------------------------------------------------

// CreateMeal validates and creates a meal. A token is required, either
// per call or via WithToken. Only 201 Created counts as success.
func (c *Client) CreateMeal(ctx context.Context, req CreateMealRequest, token string) (meal *Meal, err error) {
	defer func(start time.Time) { c.observe("create_meal", start, err) }(time.Now())
	return api.CreateMeal(ctx, c.http, c.baseURL, req, c.tokenOr(token))
}

// CreateMealRaw posts payload as-is and decodes the 201 response into out.
func (c *Client) CreateMealRaw(ctx context.Context, payload any, token string, out any) (err error) {
	defer func(start time.Time) { c.observe("create_meal", start, err) }(time.Now())
	return api.CreateMealRaw(ctx, c.http, c.baseURL, payload, c.tokenOr(token), out)
}

// ListMeals lists meals, optionally restricted to one YYYY-MM-DD date.
func (c *Client) ListMeals(ctx context.Context, date, token string) (meals []Meal, err error) {
	defer func(start time.Time) { c.observe("list_meals", start, err) }(time.Now())
	return api.ListMeals(ctx, c.http, c.baseURL, date, c.tokenOr(token))
}

// GetMeal retrieves a specific meal.
func (c *Client) GetMeal(ctx context.Context, mealID int64, token string) (meal *Meal, err error) {
	defer func(start time.Time) { c.observe("get_meal", start, err) }(time.Now())
	return api.GetMeal(ctx, c.http, c.baseURL, mealID, c.tokenOr(token))
}

// DeleteMeal deletes a meal. Backend returns 204 No Content on success.
func (c *Client) DeleteMeal(ctx context.Context, mealID int64, token string) (err error) {
	defer func(start time.Time) { c.observe("delete_meal", start, err) }(time.Now())
	return api.DeleteMeal(ctx, c.http, c.baseURL, mealID, c.tokenOr(token))
}

// WeeklySummary returns macro totals for each day of the current week.
func (c *Client) WeeklySummary(ctx context.Context, token string) (ws *WeeklySummary, err error) {
	defer func(start time.Time) { c.observe("weekly_summary", start, err) }(time.Now())
	return api.WeeklySummary(ctx, c.http, c.baseURL, c.tokenOr(token))
}
