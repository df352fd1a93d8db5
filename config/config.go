package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API   APIConfig   `yaml:"api"`
	Retry RetryConfig `yaml:"retry"`
	Log   LogConfig   `yaml:"log"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Serial  string `yaml:"serial"`
	Token   string `yaml:"token"`
	Voice   string `yaml:"voice"`
	Charset string `yaml:"charset"`
}

type RetryConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()

	if cfg.API.Serial == "" || cfg.API.Token == "" {
		return nil, fmt.Errorf("api.serial and api.token are required")
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.API.Charset == "" {
		c.API.Charset = "iso-8859-1"
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = 3
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}
