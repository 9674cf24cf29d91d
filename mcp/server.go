package mcp

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tablefront/tablefront-go/client"
	"github.com/tablefront/tablefront-go/internal/config"
	"github.com/tablefront/tablefront-go/mcp/handlers"
)

// serverConfig holds all settings for the MCP server.
type serverConfig struct {
	APIURL          string
	LogLevel        zerolog.Level
	ServerName      string
	ServerVersion   string
	ListenAddr      string
	ShutdownTimeout time.Duration
	HTTPReadTimeout time.Duration
	HTTPIdleTimeout time.Duration
}

func loadServerConfig() (*serverConfig, error) {
	base, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg := &serverConfig{
		APIURL:          base.APIURL,
		LogLevel:        base.Level(),
		ServerName:      getEnvOrDefault("MCP_SERVER_NAME", "tablefront-mcp-server"),
		ServerVersion:   getEnvOrDefault("MCP_SERVER_VERSION", "0.1.0"),
		ListenAddr:      getEnvOrDefault("MCP_LISTEN_ADDR", ":8941"),
		ShutdownTimeout: parseDurationOrDefault("SHUTDOWN_TIMEOUT", "10s"),
		HTTPReadTimeout: parseDurationOrDefault("HTTP_READ_TIMEOUT", "5s"),
		HTTPIdleTimeout: parseDurationOrDefault("HTTP_IDLE_TIMEOUT", "120s"),
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(envKey, defaultValue string) time.Duration {
	if value := os.Getenv(envKey); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	d, _ := time.ParseDuration(defaultValue)
	return d
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// shouldUseStdio picks the transport: stdio unless MCP_TRANSPORT=http.
func shouldUseStdio() bool {
	return strings.ToLower(os.Getenv("MCP_TRANSPORT")) != "http"
}

// RunServer starts the MCP server exposing restaurant tools over the SDK.
func RunServer() error {
	cfg, err := loadServerConfig()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.With().Caller().Logger()

	log.Info().Str("api_url", cfg.APIURL).Msg("Creating Tablefront client")
	sdk := client.New(cfg.APIURL)

	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
	)

	registerHandler(s, handlers.NewAvailabilityHandler(sdk), "availability")
	registerHandler(s, handlers.NewTableHandler(sdk), "table")
	registerHandler(s, handlers.NewMenuHandler(sdk), "menu")

	if shouldUseStdio() {
		log.Info().Msg("Starting Tablefront MCP server (stdio transport)")
		if err := server.ServeStdio(s); err != nil {
			log.Fatal().Err(err).Msg("Stdio server error")
		}
		return nil
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("Starting Tablefront MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	srv := &http.Server{
		Addr:        cfg.ListenAddr,
		Handler:     streamSrv,
		ReadTimeout: cfg.HTTPReadTimeout,
		// No write deadline - required for SSE streaming.
		WriteTimeout: 0,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-shutdownComplete
	return nil
}
