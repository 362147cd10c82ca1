package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Corpus       CorpusConfig       `mapstructure:"corpus"`
	Download     DownloadConfig     `mapstructure:"download"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Search       SearchConfig       `mapstructure:"search"`
	RateLimiting RateLimitConfig    `mapstructure:"rate_limiting"`
	Security     SecurityConfig     `mapstructure:"security"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// CorpusConfig contains transcript corpus settings.
// The episode-count thresholds used by the bootstrap are fixed
// constants in the corpus service, not configuration.
type CorpusConfig struct {
	Mode        string `mapstructure:"mode"`         // "local" or "hosted"
	Path        string `mapstructure:"path"`         // local corpus directory
	HostedPath  string `mapstructure:"hosted_path"`  // fixed relative path for hosted deployments
	ArchiveURL  string `mapstructure:"archive_url"`  // remote zip archive with the full corpus
	ArchiveRoot string `mapstructure:"archive_root"` // top-level folder name inside the archive
}

// DownloadConfig contains archive download settings
type DownloadConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// StorageConfig contains temporary storage settings
type StorageConfig struct {
	TempDir string `mapstructure:"temp_dir"`
}

// SearchConfig contains snippet search settings
type SearchConfig struct {
	SnippetLength int `mapstructure:"snippet_length"`
	MaxResults    int `mapstructure:"max_results"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS      bool `mapstructure:"enable_cors"`
	EnableRequestID bool `mapstructure:"enable_request_id"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
