package types

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	sdkerrors "github.com/nutritrack/nutritrack-client/client/internal/errors"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ------------------------------
// Validation Functions
// ------------------------------

const (
	maxTitleLen    = 150
	maxFoodNameLen = 200
)

var timeLayouts = []string{"15:04:05", "15:04"}

// ValidateCreateMealRequest mirrors the backend's input rules so obviously
// bad payloads fail before any network I/O. Lengths are counted after
// trimming surrounding whitespace, as the backend does.
func ValidateCreateMealRequest(req CreateMealRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return sdkerrors.Invalid("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return sdkerrors.Invalid("title exceeds %d characters", maxTitleLen)
	}
	if _, err := time.Parse(time.DateOnly, req.Date); err != nil {
		return sdkerrors.Invalid("date %q must be YYYY-MM-DD", req.Date)
	}
	if !validTime(req.Time) {
		return sdkerrors.Invalid("time %q must be HH:MM or HH:MM:SS", req.Time)
	}
	if len(req.Ingredients) == 0 {
		return sdkerrors.Invalid("at least one ingredient is required")
	}
	for i, ing := range req.Ingredients {
		name := strings.TrimSpace(ing.FoodName)
		if name == "" {
			return sdkerrors.Invalid("ingredients[%d]: food_name is required", i)
		}
		if utf8.RuneCountInString(name) > maxFoodNameLen {
			return sdkerrors.Invalid("ingredients[%d]: food_name exceeds %d characters", i, maxFoodNameLen)
		}
		if ing.WeightGrams < 0 {
			return sdkerrors.Invalid("ingredients[%d]: weight_grams must be >= 0", i)
		}
	}
	return nil
}

// ValidateDate accepts an empty string or a YYYY-MM-DD date.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return sdkerrors.Invalid("date %q must be YYYY-MM-DD", date)
	}
	return nil
}

// ValidateIDPresent validates that an ID field is non-empty.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return sdkerrors.Invalid("%s is required", field)
	}
	return nil
}

func validTime(s string) bool {
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
