package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Nutrients holds macro values. For a Food they refer to its reference
// portion (WeightGrams); for meals and ingredients they are totals.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Food is a single search-food result
type Food struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	Portion     string    `json:"portion,omitempty"`
	WeightGrams float64   `json:"weight_grams"`
	Countries   string    `json:"countries,omitempty"`
	Languages   []string  `json:"languages,omitempty"`
	Nutrients   Nutrients `json:"nutrients"`
}

// IngredientEntry is one ingredient of a stored meal with its computed macros
type IngredientEntry struct {
	ID          int64   `json:"id"`
	FoodName    string  `json:"food_name"`
	WeightGrams float64 `json:"weight_grams"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
	Carbs       float64 `json:"carbs"`
}

// Meal represents a stored meal. Date is YYYY-MM-DD and Time is HH:MM:SS,
// both as sent by the backend.
type Meal struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Ingredients   []IngredientEntry `json:"ingredients"`
	TotalCalories float64           `json:"total_calories"`
	TotalProtein  float64           `json:"total_protein"`
	TotalCarbs    float64           `json:"total_carbs"`
	TotalFat      float64           `json:"total_fat"`
	CreatedAt     *time.Time        `json:"created_at,omitempty"`
}

// Totals returns the meal totals as a Nutrients value.
func (m Meal) Totals() Nutrients {
	return Nutrients{
		Calories: m.TotalCalories,
		Protein:  m.TotalProtein,
		Carbs:    m.TotalCarbs,
		Fat:      m.TotalFat,
	}
}
