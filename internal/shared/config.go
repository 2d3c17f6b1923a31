package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server ServerConfig `toml:"server"`
	Poll   PollConfig   `toml:"poll"`
	Cache  CacheConfig  `toml:"cache"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig locates the jukebox server's HTTP API.
type ServerConfig struct {
	BaseURL string `toml:"base_url"`
}

// PollConfig contains refresh cadence settings.
//
// Intervals are policy, not protocol: the server contract does not care how often the client polls.
type PollConfig struct {
	CatalogSeconds int `toml:"catalog_seconds"`
	QueueSeconds   int `toml:"queue_seconds"`
}

// CacheConfig contains local snapshot cache settings.
type CacheConfig struct {
	Path string `toml:"path"`
}

// LogConfig contains log output settings for the TUI.
type LogConfig struct {
	Path string `toml:"path"`
}

// CatalogInterval returns the catalog poll interval as a [time.Duration].
func (p PollConfig) CatalogInterval() time.Duration {
	if p.CatalogSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(p.CatalogSeconds) * time.Second
}

// QueueInterval returns the queue+status poll interval as a [time.Duration].
func (p PollConfig) QueueInterval() time.Duration {
	if p.QueueSeconds <= 0 {
		return time.Second
	}
	return time.Duration(p.QueueSeconds) * time.Second
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
