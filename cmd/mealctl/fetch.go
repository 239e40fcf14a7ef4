package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutritrack/nutritrack-client/client"
)

func newFetchCmd(g *globals) *cobra.Command {
	var method, body string
	cmd := &cobra.Command{
		Use:   "fetch PATH",
		Short: "Send an arbitrary JSON request to the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.newClient()
			if err != nil {
				return err
			}
			opts := client.FetchOptions{Method: method, Token: g.token}
			if body != "" {
				var payload any
				if err := json.Unmarshal([]byte(body), &payload); err != nil {
					return fmt.Errorf("--body must be valid JSON: %w", err)
				}
				opts.Body = payload
			}
			var out any
			if err := c.Fetch(cmd.Context(), args[0], opts, &out); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&method, "method", "X", "GET", "HTTP method")
	cmd.Flags().StringVarP(&body, "body", "d", "", "JSON request body")
	return cmd
}

func newSearchFoodCmd(g *globals) *cobra.Command {
	var country, lang string
	cmd := &cobra.Command{
		Use:   "search-food QUERY",
		Short: "Search the food catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.newClient()
			if err != nil {
				return err
			}
			foods, err := c.SearchFoods(cmd.Context(), client.SearchFoodsRequest{Query: args[0], Country: country, Lang: lang}, g.token)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), foods)
		},
	}
	cmd.Flags().StringVarP(&country, "country", "c", client.DefaultCountry, "Country filter")
	cmd.Flags().StringVarP(&lang, "lang", "l", client.DefaultLang, "Language filter")
	return cmd
}
