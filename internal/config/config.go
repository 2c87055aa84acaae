package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults match the layout produced by the forge deployment scripts and
// expected by the agent.
const (
	DefaultBroadcastDir   = "broadcast/uniswapContracts"
	DefaultDeploymentFile = "deployedCrossLiquid.json"
	DefaultOutputPath     = "../agent/src/contracts/deployed.ts"
	DefaultSkipChain      = "31337"
)

// Sort modes for the generated deployment table.
const (
	SortLexical = "lexical"
	SortNumeric = "numeric"
)

// Config holds the settings for one merge pass.
type Config struct {
	BroadcastDir   string   `yaml:"broadcast_dir"`
	DeploymentFile string   `yaml:"deployment_file"`
	OutputPath     string   `yaml:"output_path"`
	SkipChains     []string `yaml:"skip_chains"`
	SortChains     string   `yaml:"sort_chains"`
	LogLevel       string   `yaml:"log_level"`
	ConfigFile     string   `yaml:"-"`
}

// Load loads configuration from environment variables and optionally from a
// config file
func Load() *Config {
	cfg := &Config{
		BroadcastDir:   getEnvString("MERGE_BROADCAST_DIR", DefaultBroadcastDir),
		DeploymentFile: getEnvString("MERGE_DEPLOYMENT_FILE", DefaultDeploymentFile),
		OutputPath:     getEnvString("MERGE_OUTPUT", DefaultOutputPath),
		SkipChains:     getEnvList("MERGE_SKIP_CHAINS", []string{DefaultSkipChain}),
		SortChains:     getEnvString("MERGE_SORT_CHAINS", SortLexical),
		LogLevel:       getEnvString("MERGE_LOG_LEVEL", "info"),
		ConfigFile:     getEnvString("MERGE_CONFIG_FILE", ""),
	}

	// Load from config file if specified
	if cfg.ConfigFile != "" {
		if err := cfg.loadFromFile(); err != nil {
			fmt.Printf("⚠️ Warning: Failed to load config file: %v\n", err)
		}
	}

	return cfg
}

// loadFromFile loads configuration from a YAML config file
func (c *Config) loadFromFile() error {
	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
		return result
	}
	return defaultValue
}
