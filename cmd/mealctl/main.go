// Command mealctl is a CLI for the meals backend REST API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nutritrack/nutritrack-client/client"
	"github.com/nutritrack/nutritrack-client/internal/config"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	api   string
	token string
	cfg   *config.Config
}

func (g *globals) newClient() (*client.Client, error) {
	opts := []client.Option{client.WithHTTPTimeout(g.cfg.Timeout), client.WithLogger(log.Logger)}
	if g.cfg.Debug {
		opts = append(opts, client.WithDebugLogging(true))
	}
	return client.New(g.api, opts...)
}

func newRootCmd(cfg *config.Config, out io.Writer) *cobra.Command {
	g := &globals{cfg: cfg}
	rootCmd := &cobra.Command{
		Use:           "mealctl",
		Short:         "CLI client for the meals backend REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVarP(&g.api, "api", "a", cfg.APIBase, "Backend base URL (env NUTRITRACK_API_BASE)")
	rootCmd.PersistentFlags().StringVarP(&g.token, "token", "t", cfg.Token, "Bearer token (env NUTRITRACK_TOKEN)")

	rootCmd.AddCommand(
		newFetchCmd(g),
		newSearchFoodCmd(g),
		newCreateMealCmd(g),
		newListMealsCmd(g),
		newGetMealCmd(g),
		newDeleteMealCmd(g),
		newWeeklySummaryCmd(g),
	)
	return rootCmd
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Init()

	if err := newRootCmd(cfg, os.Stdout).Execute(); err != nil {
		if he, ok := client.AsHTTPError(err); ok {
			log.Error().Int("status", he.StatusCode).Str("op", he.Op).Str("body", he.Body).Msg("request rejected")
		} else {
			log.Error().Err(err).Msg("mealctl failed")
		}
		os.Exit(1)
	}
}
