package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nutritrack/nutritrack-client/client/internal/types"
)

// CreateMeal validates req and posts it. Only 201 Created is a success.
func CreateMeal(ctx context.Context, httpClient types.HTTPClient, baseURL string, req types.CreateMealRequest, token string) (*types.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateCreateMealRequest(req); err != nil {
		return nil, err
	}
	var meal types.Meal
	if err := CreateMealRaw(ctx, httpClient, baseURL, req, token, &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// CreateMealRaw posts an arbitrary payload to the meals endpoint and
// decodes the 201 response into out. The payload is not validated.
func CreateMealRaw(ctx context.Context, httpClient types.HTTPClient, baseURL string, payload any, token string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(token, "token"); err != nil {
		return err
	}
	httpReq, err := newRequest(ctx, http.MethodPost, baseURL+"/meals/", token, payload, true)
	if err != nil {
		return err
	}
	return do(httpClient, httpReq, "create meal", exactly(http.StatusCreated), out)
}

// mealPage is the paginated list envelope. Only the first page is read.
type mealPage struct {
	Results []types.Meal `json:"results"`
}

// ListMeals returns the caller's meals, newest first. An empty date lists all.
// Both a bare array and a paginated {"results": [...]} body are accepted.
func ListMeals(ctx context.Context, httpClient types.HTTPClient, baseURL, date, token string) ([]types.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateDate(date); err != nil {
		return nil, err
	}
	u := baseURL + "/meals/"
	if date != "" {
		u += "?" + url.Values{"date": {date}}.Encode()
	}
	httpReq, err := newRequest(ctx, http.MethodGet, u, token, nil, true)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := do(httpClient, httpReq, "list meals", exactly(http.StatusOK), &raw); err != nil {
		return nil, err
	}
	return decodeMealList(raw)
}

func decodeMealList(raw json.RawMessage) ([]types.Meal, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '{' {
		var page mealPage
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, err
		}
		return page.Results, nil
	}
	var meals []types.Meal
	if err := json.Unmarshal(trimmed, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// GetMeal retrieves a single meal by ID.
func GetMeal(ctx context.Context, httpClient types.HTTPClient, baseURL string, mealID int64, token string) (*types.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/meals/%d/", baseURL, mealID)
	httpReq, err := newRequest(ctx, http.MethodGet, u, token, nil, true)
	if err != nil {
		return nil, err
	}
	var meal types.Meal
	if err := do(httpClient, httpReq, "get meal", exactly(http.StatusOK), &meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal deletes a meal. Backend returns 204 No Content on success.
func DeleteMeal(ctx context.Context, httpClient types.HTTPClient, baseURL string, mealID int64, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/meals/%d/", baseURL, mealID)
	httpReq, err := newRequest(ctx, http.MethodDelete, u, token, nil, true)
	if err != nil {
		return err
	}
	return do(httpClient, httpReq, "delete meal", exactly(http.StatusNoContent), nil)
}

// WeeklySummary returns per-day and whole-week macro totals for the current week.
func WeeklySummary(ctx context.Context, httpClient types.HTTPClient, baseURL, token string) (*types.WeeklySummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newRequest(ctx, http.MethodGet, baseURL+"/meals/weekly-summary/", token, nil, true)
	if err != nil {
		return nil, err
	}
	var ws types.WeeklySummary
	if err := do(httpClient, httpReq, "weekly summary", exactly(http.StatusOK), &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}
