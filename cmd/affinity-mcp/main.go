package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/beeper/affinity-mcp/pkg/affinity"
	"github.com/beeper/affinity-mcp/pkg/mcpserver"
	"github.com/beeper/affinity-mcp/pkg/tools"
)

const (
	name    = "affinity-mcp"
	version = "0.1.0"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	port := flag.Int("port", 0, "Port to listen on (overrides config and PORT)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", name)
		fmt.Fprintf(os.Stderr, "An MCP server exposing the Affinity CRM API as tools.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables:\n")
		fmt.Fprintf(os.Stderr, "  AFFINITY_API_KEY    Affinity API key (required)\n")
		fmt.Fprintf(os.Stderr, "  AFFINITY_BASE_URL   Affinity API base URL\n")
		fmt.Fprintf(os.Stderr, "  PORT                Port to listen on (default %d)\n", defaultPort)
		fmt.Fprintf(os.Stderr, "  LOG_LEVEL           Log level (default info)\n")
	}

	flag.Parse()

	if *showVersion {
		fmt.Fprintf(os.Stderr, "%s v%s\n", name, version)
		os.Exit(0)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	if cfg.APIKey == "" {
		log.Fatal().Msg("AFFINITY_API_KEY is required")
	}

	client := affinity.NewClient(cfg.APIKey,
		affinity.WithBaseURL(cfg.BaseURL),
		affinity.WithLogger(log.With().Str("component", "affinity").Logger()),
	)

	registry, err := tools.BuildRegistry(client)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build tool registry")
	}
	executor := tools.NewExecutor(registry, log.With().Str("component", "dispatch").Logger())
	server := mcpserver.New(name, version, executor, log.With().Str("component", "mcp").Logger())

	mux := http.NewServeMux()
	mux.Handle("/mcp", server.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Int("tools", registry.Len()).Msg("Starting MCP server")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
}
