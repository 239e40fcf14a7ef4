package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/nutritrack/nutritrack-client/client"
)

// FoodHandler exposes the food catalogue search.
type FoodHandler struct {
	client *client.Client
}

func NewFoodHandler(c *client.Client) *FoodHandler { return &FoodHandler{client: c} }

func (fh *FoodHandler) RegisterTools(s *server.MCPServer) error {
	search := mcp.NewTool("search_food",
		mcp.WithDescription("Search foods by name; returns nutrients per reference portion"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Food name or part of it")),
		mcp.WithString("country", mcp.Description("Country filter, default BR")),
		mcp.WithString("lang", mcp.Description("Language filter, default pt")),
	)
	s.AddTool(search, fh.handleSearchFood)
	return nil
}

func (fh *FoodHandler) handleSearchFood(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	args := req.GetArguments()
	country, _ := args["country"].(string)
	lang, _ := args["lang"].(string)

	log.Debug().Str("query", query).Str("country", country).Str("lang", lang).Msg("search_food invoked")

	start := time.Now()
	foods, err := fh.client.SearchFoods(ctx, client.SearchFoodsRequest{Query: query, Country: country, Lang: lang}, "")
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("search_food failed")
		return errorResult("search_food", err), nil
	}
	if foods == nil {
		foods = []client.Food{}
	}
	return jsonResult(foods)
}
