package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Provider names accepted in configuration.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config holds settings read from the config file and the environment.
// Environment variables override the file.
type Config struct {
	DB        string  `toml:"db"`
	Provider  string  `toml:"provider"`
	Model     string  `toml:"model"`
	Addr      string  `toml:"addr"`
	RateLimit float64 `toml:"rate_limit"`
	Burst     int     `toml:"burst"`

	// TrustProxy keys rate limits on X-Forwarded-For. Set it only when serving
	// behind a reverse proxy.
	TrustProxy bool `toml:"trust_proxy"`

	GroqAPIKey   string `toml:"groq_api_key"`
	GeminiAPIKey string `toml:"gemini_api_key"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		DB:        filepath.Join(configDir(), "sitedraft.db"),
		Provider:  ProviderGroq,
		Addr:      "127.0.0.1:8080",
		RateLimit: 0.2,
		Burst:     3,
	}
}

// DefaultConfigPath is where the config file is looked up when no path is given.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// LoadConfig reads the TOML file at path over the defaults and applies
// environment overrides read with getenv. An empty path falls back to
// DefaultConfigPath, which may be missing; an explicit path must exist.
func LoadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("SITEDRAFT_DB"); v != "" {
		c.DB = v
	}
	if v := getenv("SITEDRAFT_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := getenv("SITEDRAFT_MODEL"); v != "" {
		c.Model = v
	}
	if v := getenv("SITEDRAFT_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("SITEDRAFT_RATE_LIMIT"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("SITEDRAFT_RATE_LIMIT: %w", err)
		}
		c.RateLimit = rate
	}
	if v := getenv("SITEDRAFT_TRUST_PROXY"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SITEDRAFT_TRUST_PROXY: %w", err)
		}
		c.TrustProxy = trust
	}
	if v := getenv("GROQ_API_KEY"); v != "" {
		c.GroqAPIKey = v
	}
	if v := getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	return nil
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGroq, ProviderGemini:
	default:
		return fmt.Errorf("unknown provider %q (want %s or %s)", c.Provider, ProviderGroq, ProviderGemini)
	}
	if c.DB == "" {
		return errors.New("database path required")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive, got %v", c.RateLimit)
	}
	return nil
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".sitedraft")
}
