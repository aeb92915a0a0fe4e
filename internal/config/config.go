// Package config provides configuration loading and validation for the CLI
// and the local API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/skillsync/internal/schemas"
)

// Default values applied by Defaults and MergeWithDefaults.
const (
	DefaultPort          = 8080
	DefaultHost          = "localhost"
	DefaultRevealDelayMS = 3000
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Server
	Port           int      `json:"port,omitempty"`            // Port for skillsync serve
	Host           string   `json:"host,omitempty"`            // Interface to bind
	AllowedOrigins []string `json:"allowed_origins,omitempty"` // CORS origins for the presentation layer

	// Behavior
	RevealDelayMS int    `json:"reveal_delay_ms,omitempty"` // Pause before assessment results are shown
	Verbose       bool   `json:"verbose,omitempty"`         // Print detailed output
	Profile       string `json:"profile,omitempty"`         // Default profile document path
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:           DefaultPort,
		Host:           DefaultHost,
		RevealDelayMS:  DefaultRevealDelayMS,
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := schemas.ValidateDocument(schemas.ConfigSchema, data); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RevealDelayMS < 0 {
		return fmt.Errorf("config error: 'reveal_delay_ms' must be non-negative")
	}
	for _, origin := range c.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("config error: 'allowed_origins' contains an empty origin")
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Host == "" {
		result.Host = defaults.Host
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RevealDelayMS == 0 {
		result.RevealDelayMS = defaults.RevealDelayMS
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = append([]string(nil), defaults.AllowedOrigins...)
	}

	// Bools cannot distinguish unset from false, so CLI flags always win.

	return result
}

// ApplyEnv overrides fields from SKILLSYNC_* environment variables.
// Unparsable values are ignored.
func (c *Config) ApplyEnv() {
	c.Port = getEnvInt("SKILLSYNC_PORT", c.Port)
	c.Host = getEnvString("SKILLSYNC_HOST", c.Host)
	c.RevealDelayMS = getEnvInt("SKILLSYNC_REVEAL_DELAY_MS", c.RevealDelayMS)
	c.Verbose = getEnvBool("SKILLSYNC_VERBOSE", c.Verbose)
	if origins := getEnvString("SKILLSYNC_ALLOWED_ORIGINS", ""); origins != "" {
		c.AllowedOrigins = parseList(origins)
	}
}

// RevealDelay returns RevealDelayMS as a duration.
func (c *Config) RevealDelay() time.Duration {
	return time.Duration(c.RevealDelayMS) * time.Millisecond
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func parseList(list string) []string {
	var out []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
