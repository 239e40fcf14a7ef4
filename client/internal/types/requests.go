package types

// ------------------------------
// Request Types
// ------------------------------

// FetchOptions configures a generic request. Method defaults to GET.
// Token, when non-empty, is sent as a bearer credential. Body, when
// non-nil, is serialized as JSON.
type FetchOptions struct {
	Method string
	Token  string
	Body   any
}

// SearchFoodsRequest holds search-food parameters. Empty Country and Lang
// fall back to DefaultCountry and DefaultLang.
type SearchFoodsRequest struct {
	Query   string
	Country string
	Lang    string
}

// Default search filters.
const (
	DefaultCountry = "BR"
	DefaultLang    = "pt"
)

// IngredientInput is one ingredient of a meal to create
type IngredientInput struct {
	FoodName    string  `json:"food_name"`
	WeightGrams float64 `json:"weight_grams"`
}

// CreateMealRequest holds parameters for a new meal
type CreateMealRequest struct {
	Title       string            `json:"title"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Ingredients []IngredientInput `json:"ingredients"`
}
