package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nutritrack/nutritrack-client/client"
)

// parseIngredient turns "name:grams" into an IngredientInput. The name may
// itself contain colons; the last one separates the weight.
func parseIngredient(s string) (client.IngredientInput, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 || i == len(s)-1 {
		return client.IngredientInput{}, fmt.Errorf("ingredient %q: want NAME:GRAMS", s)
	}
	grams, err := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
	if err != nil {
		return client.IngredientInput{}, fmt.Errorf("ingredient %q: %w", s, err)
	}
	return client.IngredientInput{FoodName: strings.TrimSpace(s[:i]), WeightGrams: grams}, nil
}

func parseMealID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("meal id %q must be a positive integer", s)
	}
	return id, nil
}

func newCreateMealCmd(g *globals) *cobra.Command {
	var title, date, tm, raw string
	var ingredients []string
	cmd := &cobra.Command{
		Use:   "create-meal",
		Short: "Create a meal from flags or a raw JSON payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.newClient()
			if err != nil {
				return err
			}
			if raw != "" {
				var payload any
				if err := json.Unmarshal([]byte(raw), &payload); err != nil {
					return fmt.Errorf("--json must be valid JSON: %w", err)
				}
				var out any
				if err := c.CreateMealRaw(cmd.Context(), payload, g.token, &out); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			}

			now := time.Now()
			if date == "" {
				date = now.Format(time.DateOnly)
			}
			if tm == "" {
				tm = now.Format("15:04")
			}
			req := client.CreateMealRequest{Title: title, Date: date, Time: tm}
			for _, s := range ingredients {
				ing, err := parseIngredient(s)
				if err != nil {
					return err
				}
				req.Ingredients = append(req.Ingredients, ing)
			}
			meal, err := c.CreateMeal(cmd.Context(), req, g.token)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), meal)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Meal title")
	cmd.Flags().StringVar(&date, "date", "", "Meal date YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&tm, "time", "", "Meal time HH:MM (defaults to now)")
	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, "Ingredient as NAME:GRAMS (repeatable)")
	cmd.Flags().StringVar(&raw, "json", "", "Raw JSON payload, sent unvalidated")
	cmd.MarkFlagsMutuallyExclusive("json", "title")
	return cmd
}

func newListMealsCmd(g *globals) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "list-meals",
		Short: "List meals, optionally for a single date",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.newClient()
			if err != nil {
				return err
			}
			meals, err := c.ListMeals(cmd.Context(), date, g.token)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), meals)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Only meals on this date (YYYY-MM-DD)")
	return cmd
}

func newGetMealCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "get-meal ID",
		Short: "Get a meal by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMealID(args[0])
			if err != nil {
				return err
			}
			c, err := g.newClient()
			if err != nil {
				return err
			}
			meal, err := c.GetMeal(cmd.Context(), id, g.token)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), meal)
		},
	}
}

func newDeleteMealCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-meal ID",
		Short: "Delete a meal by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMealID(args[0])
			if err != nil {
				return err
			}
			c, err := g.newClient()
			if err != nil {
				return err
			}
			if err := c.DeleteMeal(cmd.Context(), id, g.token); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted meal %d\n", id)
			return nil
		},
	}
}

func newWeeklySummaryCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "weekly-summary",
		Short: "Show macro totals for the current week",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.newClient()
			if err != nil {
				return err
			}
			ws, err := c.WeeklySummary(cmd.Context(), g.token)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ws)
		},
	}
}
