package config

import (
	"fmt"
	"os"

	"markov-go/internal/service/markov"

	"gopkg.in/yaml.v2"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Mcp     McpConfig     `yaml:"mcp"`
	Markov  MarkovConfig  `yaml:"markov"`
	Logging LoggingConfig `yaml:"logging"`
}

type AppConfig struct {
	Port int `yaml:"port"`
}

type McpConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (m McpConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// MarkovConfig controls chain construction and generation
type MarkovConfig struct {
	// MaxOutputTokens caps the generated text, the two seed words included
	MaxOutputTokens int `yaml:"max_output_tokens"`
	// CapacityHint pre-sizes the continuation table
	CapacityHint int `yaml:"capacity_hint"`
	// Seed makes generation reproducible; 0 means random. A non-zero seed
	// restarts for every request, so the same corpus always produces the
	// same text.
	Seed      uint64 `yaml:"seed"`
	Tokenizer string `yaml:"tokenizer"`
}

type LoggingConfig struct {
	Level       string   `yaml:"level"`
	OutputPaths []string `yaml:"output_paths"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		App: AppConfig{
			Port: 8080,
		},
		Mcp: McpConfig{
			Host: "localhost",
			Port: 8081,
		},
		Markov: MarkovConfig{
			MaxOutputTokens: markov.DefaultMaxOutputTokens,
			CapacityHint:    markov.DefaultCapacityHint,
			Seed:            0,
			Tokenizer:       "whitespace",
		},
		Logging: LoggingConfig{
			Level:       "info",
			OutputPaths: []string{"stderr"},
		},
	}
}

// LoadConfig reads a YAML file over the defaults
func LoadConfig(appConfigPath string) (*Config, error) {
	data, err := os.ReadFile(appConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read app config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result
func ParseConfig(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Markov.MaxOutputTokens < 0 || c.Markov.MaxOutputTokens > markov.MaxOutputTokensLimit {
		return fmt.Errorf("markov.max_output_tokens must be between 0 and %d, got %d", markov.MaxOutputTokensLimit, c.Markov.MaxOutputTokens)
	}
	if c.Markov.CapacityHint < 0 {
		return fmt.Errorf("markov.capacity_hint must not be negative, got %d", c.Markov.CapacityHint)
	}
	if c.App.Port < 0 || c.App.Port > 65535 {
		return fmt.Errorf("app.port out of range: %d", c.App.Port)
	}
	if c.Mcp.Port < 0 || c.Mcp.Port > 65535 {
		return fmt.Errorf("mcp.port out of range: %d", c.Mcp.Port)
	}
	return nil
}
