// Package config loads server settings from an optional YAML file, a .env
// file and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	Content  ContentConfig  `yaml:"content"`
}

type ServerConfig struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode,omitempty"` // "debug", "release" or "test"
}

type ProviderConfig struct {
	Name            string        `yaml:"name"`
	Model           string        `yaml:"model"`
	APIKey          string        `yaml:"api_key,omitempty"`
	BaseURL         string        `yaml:"base_url,omitempty"`
	Temperature     float32       `yaml:"temperature"`
	TopP            float32       `yaml:"top_p"`
	MaxOutputTokens int32         `yaml:"max_output_tokens"`
	Timeout         time.Duration `yaml:"timeout"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ContentConfig struct {
	Language string `yaml:"language"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Provider: ProviderConfig{
			Name:            ProviderGemini,
			Model:           "gemini-2.5-flash",
			Temperature:     0.7,
			TopP:            0.95,
			MaxOutputTokens: 8192,
			Timeout:         2 * time.Minute,
		},
		Storage: StorageConfig{Driver: StorageSQLite, Path: "data/content-engine.db"},
		Logging: LoggingConfig{Level: "info"},
		Content: ContentConfig{Language: "Brazilian Portuguese"},
	}
}

// Load reads path (if it exists), then .env, then environment overrides.
// An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			slog.Debug("Config file not found, using defaults", slog.String("path", path))
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.GinMode, "GIN_MODE")
	setString(&c.Provider.Name, "CONTENT_PROVIDER")
	setString(&c.Provider.Model, "CONTENT_MODEL")
	setString(&c.Provider.BaseURL, "OPENAI_BASE_URL")
	setString(&c.Storage.Driver, "STORAGE_DRIVER")
	setString(&c.Storage.Path, "STORAGE_PATH")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Content.Language, "CONTENT_LANGUAGE")

	c.Provider.Name = strings.ToLower(strings.TrimSpace(c.Provider.Name))
	if c.Provider.APIKey == "" {
		switch c.Provider.Name {
		case ProviderGemini:
			c.Provider.APIKey = os.Getenv("GEMINI_API_KEY")
		case ProviderOpenAI:
			c.Provider.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	if v := os.Getenv("CONTENT_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("invalid CONTENT_TEMPERATURE %q: %w", v, err)
		}
		c.Provider.Temperature = float32(f)
	}
	if v := os.Getenv("CONTENT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CONTENT_TIMEOUT %q: %w", v, err)
		}
		c.Provider.Timeout = d
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	switch c.Provider.Name {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported provider %q", c.Provider.Name)
	}
	if c.Provider.APIKey == "" {
		return fmt.Errorf("an API key is required for provider %s", c.Provider.Name)
	}
	if c.Provider.Model == "" {
		return errors.New("provider model is required")
	}
	switch c.Storage.Driver {
	case StorageMemory:
	case StorageFile, StorageSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage driver %s requires a path", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
}

// NewLogger builds the process logger from the logging section.
func (c *Config) NewLogger() *slog.Logger {
	level, _ := ParseLevel(c.Logging.Level)
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
