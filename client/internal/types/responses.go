package types

// ------------------------------
// Response Types
// ------------------------------

// WeeklySummary holds macro totals for the current Monday-to-Sunday week.
// Days is keyed by ISO date (YYYY-MM-DD).
type WeeklySummary struct {
	Days       map[string]Nutrients `json:"days"`
	WeekTotals Nutrients            `json:"week_totals"`
}
