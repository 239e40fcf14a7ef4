package client

import "github.com/nutritrack/nutritrack-client/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
// Requests
type (
	FetchOptions       = types.FetchOptions
	SearchFoodsRequest = types.SearchFoodsRequest
	CreateMealRequest  = types.CreateMealRequest
	IngredientInput    = types.IngredientInput

	// Domain entities
	Food            = types.Food
	Nutrients       = types.Nutrients
	Meal            = types.Meal
	IngredientEntry = types.IngredientEntry

	// Responses
	WeeklySummary = types.WeeklySummary
)

// Default search filters applied when SearchFoodsRequest leaves them empty.
const (
	DefaultCountry = types.DefaultCountry
	DefaultLang    = types.DefaultLang
)
