package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

const configFileName = "loom.yaml"

// Initialize loads, defaults, and validates configuration from configDir.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read loom.yaml from configDir
//  2. Expand {{.VAR}} environment references
//  3. Parse YAML into structs
//  4. Merge built-in defaults under user values
//  5. Validate everything
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"workers", stats.Workers,
		"mcp_stdio", stats.StdioMCP,
		"mcp_http", stats.HTTPMCP,
		"local_tools", stats.LocalTools,
		"bridge", stats.BridgeSet)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	var cfg Config
	if err := loadYAML(configDir, configFileName, &cfg); err != nil {
		return nil, NewLoadError(configFileName, err)
	}
	cfg.configDir = configDir

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills unset sections and merges built-in defaults under
// any partially specified ones.
func applyDefaults(cfg *Config) error {
	if cfg.Server == nil {
		cfg.Server = DefaultServerConfig()
	} else if err := mergo.Merge(cfg.Server, DefaultServerConfig()); err != nil {
		return fmt.Errorf("failed to merge server defaults: %w", err)
	}

	if cfg.Memory == nil {
		cfg.Memory = DefaultMemoryConfig()
	} else if err := mergo.Merge(cfg.Memory, DefaultMemoryConfig()); err != nil {
		return fmt.Errorf("failed to merge memory defaults: %w", err)
	}

	if cfg.Tools == nil {
		cfg.Tools = DefaultToolsConfig()
	}

	if cfg.Streaming == nil {
		cfg.Streaming = DefaultStreamingConfig()
	} else if err := mergo.Merge(cfg.Streaming, DefaultStreamingConfig()); err != nil {
		return fmt.Errorf("failed to merge streaming defaults: %w", err)
	}

	if cfg.MCP == nil {
		cfg.MCP = &MCPConfig{}
	}
	return nil
}

func loadYAML(configDir, filename string, target any) error {
	path := filepath.Join(configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}
