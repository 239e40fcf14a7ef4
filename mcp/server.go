package mcp

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/nutritrack/nutritrack-client/client"
	"github.com/nutritrack/nutritrack-client/internal/config"
	"github.com/nutritrack/nutritrack-client/mcp/internal/handlers"
)

const (
	serverName    = "nutritrack-mcp-server"
	serverVersion = "0.1.0"
	httpAddr      = ":8765"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server exposing the meals API as tools.
func NewServer(c *client.Client) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)
	for _, h := range []toolRegisterer{
		handlers.NewFoodHandler(c),
		handlers.NewMealHandler(c),
	} {
		if err := h.RegisterTools(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// RunMCPServer loads configuration from the environment and serves the
// tools over stdio when launched by another process, or over Streamable
// HTTP on :8765 otherwise.
func RunMCPServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Init()

	opts := []client.Option{
		client.WithHTTPTimeout(cfg.Timeout),
		client.WithToken(cfg.Token),
	}
	if cfg.Debug {
		opts = append(opts, client.WithDebugLogging(true))
	}
	c, err := client.New(cfg.APIBase, opts...)
	if err != nil {
		return err
	}
	log.Info().Str("api_base", c.BaseURL()).Bool("token_present", cfg.Token != "").Msg("client created")

	s, err := NewServer(c)
	if err != nil {
		return err
	}

	if shouldUseStdio() {
		log.Info().Msg("starting MCP server (stdio transport)")
		return server.ServeStdio(s)
	}

	log.Info().Str("addr", httpAddr).Msg("starting MCP server (Streamable HTTP)")
	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)
	srv := &http.Server{
		Addr:        httpAddr,
		Handler:     streamSrv,
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})
	go func() {
		defer close(shutdownComplete)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio picks stdio when MCP_STDIO=true, HTTP when MCP_HTTP=true,
// and otherwise stdio whenever stdin is not a terminal.
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
