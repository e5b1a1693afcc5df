package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/beeper/affinity-mcp/pkg/affinity"
)

const defaultPort = 8080

// Config holds the startup configuration. Precedence: flags, then
// environment, then the optional YAML file, then defaults.
type Config struct {
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{
		BaseURL:  affinity.DefaultBaseURL,
		Port:     defaultPort,
		LogLevel: "info",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = affinity.DefaultBaseURL
		}
		if cfg.Port == 0 {
			cfg.Port = defaultPort
		}
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}

	if key := os.Getenv("AFFINITY_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if baseURL := os.Getenv("AFFINITY_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if port := os.Getenv("PORT"); port != "" {
		parsed, err := strconv.Atoi(port)
		if err != nil {
			return cfg, fmt.Errorf("invalid PORT value %q", port)
		}
		cfg.Port = parsed
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}
