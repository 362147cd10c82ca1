package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("CASTSEARCH")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	mode := viper.GetString("corpus.mode")
	if mode != "local" && mode != "hosted" {
		return fmt.Errorf("invalid corpus mode %q (must be \"local\" or \"hosted\")", mode)
	}

	if viper.GetString("corpus.archive_url") == "" {
		return fmt.Errorf("corpus archive URL must not be empty")
	}

	// Auto-correct invalid snippet length
	if viper.GetInt("search.snippet_length") <= 0 {
		viper.Set("search.snippet_length", 500)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Corpus.Mode != "local" && c.Corpus.Mode != "hosted" {
		return fmt.Errorf("invalid corpus mode %q (must be \"local\" or \"hosted\")", c.Corpus.Mode)
	}

	if c.Search.SnippetLength <= 0 {
		c.Search.SnippetLength = 500
	}

	return nil
}

// Dir returns the corpus directory for the configured mode.
// Hosted deployments use a fixed relative path; local mode is overridable
// via config or the CASTSEARCH_CORPUS_PATH environment variable.
func (c *CorpusConfig) Dir() string {
	if c.Mode == "hosted" {
		return c.HostedPath
	}
	return c.Path
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Corpus defaults
	viper.SetDefault("corpus.mode", "local")
	viper.SetDefault("corpus.path", "./data/episodes")
	viper.SetDefault("corpus.hosted_path", "./tmp/episodes")
	viper.SetDefault("corpus.archive_url", "https://github.com/castsearch/podcast-transcripts/archive/refs/heads/main.zip")
	viper.SetDefault("corpus.archive_root", "podcast-transcripts-main")

	// Download defaults
	viper.SetDefault("download.timeout", 10*time.Minute)
	viper.SetDefault("download.user_agent", "TranscriptsAPI/1.0")

	// Storage defaults
	viper.SetDefault("storage.temp_dir", "./tmp")

	// Search defaults
	viper.SetDefault("search.snippet_length", 500)
	viper.SetDefault("search.max_results", 10)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.enable_request_id", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
