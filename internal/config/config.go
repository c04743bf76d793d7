package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Tools   ToolsConfig   `yaml:"tools"`
	Whisper WhisperConfig `yaml:"whisper"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
	Gemini  GeminiConfig  `yaml:"gemini"`
}

type ToolsConfig struct {
	FFmpegPath string `yaml:"ffmpeg_path"`
	PythonPath string `yaml:"python_path"`
}

type WhisperConfig struct {
	DefaultModel string `yaml:"default_model"`
}

// PathsConfig configures watch mode. Both are unused for one-shot runs.
type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// GeminiConfig enables the optional transcript summary when API keys are set.
type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate checks required fields and fills in defaults.
func (c *Config) Validate() error {
	if c.Tools.FFmpegPath == "" {
		c.Tools.FFmpegPath = "ffmpeg"
	}
	if c.Tools.PythonPath == "" {
		c.Tools.PythonPath = "python3"
	}
	if c.Whisper.DefaultModel == "" {
		c.Whisper.DefaultModel = "base"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Paths.Input != "" && c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required when paths.input is set")
	}

	return nil
}
