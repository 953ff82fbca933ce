package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/scriptport/internal/logfields"
)

// Config represents the application configuration
type Config struct {
	// SourceDir holds the QuantumultX source scripts.
	SourceDir string `yaml:"source_dir"`
	// LoonDir and SurgeDir receive the generated dialect files.
	LoonDir  string `yaml:"loon_dir"`
	SurgeDir string `yaml:"surge_dir"`
	// SourceExtensions filters which files in SourceDir are converted.
	SourceExtensions []string `yaml:"source_extensions,omitempty"`
	LoonExtension    string   `yaml:"loon_extension,omitempty"`
	SurgeExtension   string   `yaml:"surge_extension,omitempty"`
	// Author overrides the placeholder stamped into generated headers.
	Author string `yaml:"author,omitempty"`
	// CachePath locates the JSON hash cache used for incremental skips.
	CachePath string `yaml:"cache_path,omitempty"`
}

// Default returns the fixed directory layout used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file. A missing file is not an
// error: the fixed default layout applies.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("Configuration file not found, using defaults", logfields.Path(configPath))
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.SourceDir == "" {
		c.SourceDir = "qx"
	}
	if c.LoonDir == "" {
		c.LoonDir = "loon"
	}
	if c.SurgeDir == "" {
		c.SurgeDir = "surge"
	}
	if len(c.SourceExtensions) == 0 {
		c.SourceExtensions = []string{".js", ".snippet"}
	}
	if c.LoonExtension == "" {
		c.LoonExtension = ".plugin"
	}
	if c.SurgeExtension == "" {
		c.SurgeExtension = ".sgmodule"
	}
	if c.CachePath == "" {
		c.CachePath = ".cache/hashes.json"
	}
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Default()
	example.Author = "YOUR_NAME"

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// loadEnvFiles loads environment variables from .env and .env.local when
// present. godotenv never overrides variables that are already set, so on
// duplicate keys the earlier file wins.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			slog.Debug("Loaded environment variables", logfields.Path(envPath))
		}
	}
}
