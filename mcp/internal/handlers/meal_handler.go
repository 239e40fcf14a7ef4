package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/nutritrack/nutritrack-client/client"
)

// MealHandler exposes meal logging tools.
type MealHandler struct {
	client *client.Client
}

func NewMealHandler(c *client.Client) *MealHandler { return &MealHandler{client: c} }

func (mh *MealHandler) RegisterTools(s *server.MCPServer) error {
	create := mcp.NewTool("create_meal",
		mcp.WithDescription("Log a meal; the backend computes macros from the ingredients"),
		mcp.WithString("title", mcp.Required(), mcp.Description("Meal title (≤150 chars)")),
		mcp.WithString("date", mcp.Description("YYYY-MM-DD, defaults to today")),
		mcp.WithString("time", mcp.Description("HH:MM or HH:MM:SS, defaults to now")),
		mcp.WithString("ingredients", mcp.Required(), mcp.Description(`JSON array like [{"food_name":"Arroz","weight_grams":100}]`)),
	)
	list := mcp.NewTool("list_meals",
		mcp.WithDescription("List logged meals, newest first"),
		mcp.WithString("date", mcp.Description("Only meals on this YYYY-MM-DD date")),
	)
	get := mcp.NewTool("get_meal",
		mcp.WithDescription("Get one meal with its ingredients"),
		mcp.WithNumber("meal_id", mcp.Required(), mcp.Description("Meal ID")),
	)
	del := mcp.NewTool("delete_meal",
		mcp.WithDescription("Delete a meal"),
		mcp.WithNumber("meal_id", mcp.Required(), mcp.Description("Meal ID")),
	)
	weekly := mcp.NewTool("weekly_summary",
		mcp.WithDescription("Calories and macros per day for the current Monday-Sunday week"),
	)
	s.AddTool(create, mh.handleCreateMeal)
	s.AddTool(list, mh.handleListMeals)
	s.AddTool(get, mh.handleGetMeal)
	s.AddTool(del, mh.handleDeleteMeal)
	s.AddTool(weekly, mh.handleWeeklySummary)
	return nil
}

// parseIngredients accepts either a JSON string or an already-decoded array.
func parseIngredients(v any) ([]client.IngredientInput, error) {
	var raw []byte
	switch t := v.(type) {
	case string:
		raw = []byte(t)
	case nil:
		return nil, fmt.Errorf("ingredients is required")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	var out []client.IngredientInput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("ingredients must be a JSON array of {food_name, weight_grams}: %w", err)
	}
	return out, nil
}

// mealID reads a positive integer id from a number argument.
func mealID(req mcp.CallToolRequest) (int64, error) {
	v, ok := req.GetArguments()["meal_id"].(float64)
	if !ok || v < 1 || v != float64(int64(v)) {
		return 0, fmt.Errorf("meal_id must be a positive integer")
	}
	return int64(v), nil
}

func (mh *MealHandler) handleCreateMeal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	args := req.GetArguments()
	ingredients, err := parseIngredients(args["ingredients"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	now := time.Now()
	date, _ := args["date"].(string)
	if date == "" {
		date = now.Format(time.DateOnly)
	}
	tm, _ := args["time"].(string)
	if tm == "" {
		tm = now.Format("15:04")
	}

	log.Debug().Str("title", title).Int("ingredients", len(ingredients)).Msg("create_meal invoked")

	start := time.Now()
	meal, err := mh.client.CreateMeal(ctx, client.CreateMealRequest{Title: title, Date: date, Time: tm, Ingredients: ingredients}, "")
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("create_meal failed")
		return errorResult("create_meal", err), nil
	}
	return jsonResult(meal)
}

func (mh *MealHandler) handleListMeals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, _ := req.GetArguments()["date"].(string)
	log.Debug().Str("date", date).Msg("list_meals invoked")

	meals, err := mh.client.ListMeals(ctx, date, "")
	if err != nil {
		return errorResult("list_meals", err), nil
	}
	if meals == nil {
		meals = []client.Meal{}
	}
	return jsonResult(meals)
}

func (mh *MealHandler) handleGetMeal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := mealID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	meal, err := mh.client.GetMeal(ctx, id, "")
	if err != nil {
		return errorResult("get_meal", err), nil
	}
	return jsonResult(meal)
}

func (mh *MealHandler) handleDeleteMeal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := mealID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := mh.client.DeleteMeal(ctx, id, ""); err != nil {
		return errorResult("delete_meal", err), nil
	}
	return jsonResult(map[string]any{"mealId": id, "deleted": true})
}

func (mh *MealHandler) handleWeeklySummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ws, err := mh.client.WeeklySummary(ctx, "")
	if err != nil {
		return errorResult("weekly_summary", err), nil
	}
	return jsonResult(ws)
}
