package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the scholarfolio configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Styling StylingConfig `yaml:"styling"`
	Site    SiteConfig    `yaml:"site"`
	Assist  *AssistConfig `yaml:"assist,omitempty"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port  int    `yaml:"port"`
	Host  string `yaml:"host"`
	Debug bool   `yaml:"debug"`
}

// StylingConfig holds the startup presentation settings
type StylingConfig struct {
	Theme        string `yaml:"theme"`
	PrimaryColor string `yaml:"primary_color"`
}

// SiteConfig holds document and output locations
type SiteConfig struct {
	Snapshot  string `yaml:"snapshot"`   // snapshot file loaded on start and watched during serve
	OutputDir string `yaml:"output_dir"` // where exports land
	Watch     bool   `yaml:"watch"`      // hot-reload the snapshot file when it changes on disk
}

// AssistConfig holds the writing-assist endpoint settings
type AssistConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Model    string `yaml:"model,omitempty"`
	// APIKey supports environment variable expansion (e.g., "${GEMINI_API_KEY}")
	APIKey string `yaml:"api_key,omitempty"`
	// RequestsPerMinute rate-limits assist calls (default: 10)
	RequestsPerMinute float64 `yaml:"requests_per_minute,omitempty"`
	Timeout           string  `yaml:"timeout,omitempty"`
}

// GetAPIKey returns the assist API key with environment variable expansion
func (a *AssistConfig) GetAPIKey() string {
	if a == nil || a.APIKey == "" {
		return ""
	}
	return os.ExpandEnv(a.APIKey)
}

// GetEndpoint returns the assist endpoint (default: the Gemini generateContent API)
func (a *AssistConfig) GetEndpoint() string {
	if a == nil || a.Endpoint == "" {
		return "https://generativelanguage.googleapis.com/v1beta/models"
	}
	return a.Endpoint
}

// GetModel returns the assist model name (default: gemini-2.0-flash)
func (a *AssistConfig) GetModel() string {
	if a == nil || a.Model == "" {
		return "gemini-2.0-flash"
	}
	return a.Model
}

// GetRequestsPerMinute returns the assist rate limit (default: 10)
func (a *AssistConfig) GetRequestsPerMinute() float64 {
	if a == nil || a.RequestsPerMinute <= 0 {
		return 10
	}
	return a.RequestsPerMinute
}

// GetTimeout returns the parsed assist request timeout (default: 20s)
func (a *AssistConfig) GetTimeout() time.Duration {
	if a == nil || a.Timeout == "" {
		return 20 * time.Second
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 20 * time.Second
	}
	return d
}

// GetSnapshotPath returns the snapshot file path (default: site.json)
func (s SiteConfig) GetSnapshotPath() string {
	if s.Snapshot == "" {
		return "site.json"
	}
	return s.Snapshot
}

// GetOutputDir returns the export directory (default: dist)
func (s SiteConfig) GetOutputDir() string {
	if s.OutputDir == "" {
		return "dist"
	}
	return s.OutputDir
}

// Addr returns the host:port the server binds to
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:  8080,
			Host:  "localhost",
			Debug: false,
		},
		Styling: StylingConfig{
			Theme:        "theme-1",
			PrimaryColor: "#8C1515",
		},
		Site: SiteConfig{
			Snapshot:  "site.json",
			OutputDir: "dist",
			Watch:     true,
		},
	}
}

// Load loads configuration from a YAML file
// If the file doesn't exist, returns the default configuration
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadFromDir looks for scholarfolio.yaml in the given directory.
// If it is not found, returns the default configuration
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, "scholarfolio.yaml"))
}

// Save writes the configuration to a YAML file
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
