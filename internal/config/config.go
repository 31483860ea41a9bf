package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultBaseURL           = "https://itunes.apple.com"
	DefaultLimit             = 200
	DefaultTimeout           = 15 * time.Second
	DefaultRequestsPerMinute = 20
	DefaultHistorySize       = 50
)

type Config struct {
	Debug bool `koanf:"debug"` // enable debug logging for every service

	// iTunes Search API settings
	ITunes ITunesConfig `koanf:"itunes"`

	// Locale overrides (empty means detect from the environment)
	Locale LocaleConfig `koanf:"locale"`

	// Recent searches
	History HistoryConfig `koanf:"history"`

	// Artwork in the detail popup
	Artwork ArtworkConfig `koanf:"artwork"`
}

// ITunesConfig holds search endpoint settings.
type ITunesConfig struct {
	BaseURL           string `koanf:"base_url"`            // default: https://itunes.apple.com
	Limit             int    `koanf:"limit"`               // max results per query (1-200, default: 200)
	TimeoutSeconds    int    `koanf:"timeout_seconds"`     // HTTP timeout (default: 15)
	RequestsPerMinute int    `koanf:"requests_per_minute"` // client-side rate limit (default: 20)
}

// LocaleConfig overrides the detected locale hints.
type LocaleConfig struct {
	Language string `koanf:"language"` // e.g. "en_US"
	Country  string `koanf:"country"`  // e.g. "US"
}

// HistoryConfig controls the recent searches store.
type HistoryConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
	Size    int   `koanf:"size"`    // entries shown in the history popup (default: 50)
}

// ArtworkConfig controls artwork download and display.
type ArtworkConfig struct {
	Enabled  *bool  `koanf:"enabled"`   // default: true
	CacheDir string `koanf:"cache_dir"` // default: user cache dir
}

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Last existing file wins
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.ITunes.BaseURL = strings.TrimSuffix(cfg.ITunes.BaseURL, "/")
	cfg.Locale.Language = strings.TrimSpace(cfg.Locale.Language)
	cfg.Locale.Country = strings.ToUpper(strings.TrimSpace(cfg.Locale.Country))

	if cfg.Artwork.CacheDir != "" {
		cfg.Artwork.CacheDir = expandPath(cfg.Artwork.CacheDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/storesearch/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "storesearch", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetITunesConfig returns the endpoint configuration with defaults applied.
func (c *Config) GetITunesConfig() ITunesConfig {
	cfg := c.ITunes

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Limit <= 0 || cfg.Limit > DefaultLimit {
		cfg.Limit = DefaultLimit
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = int(DefaultTimeout / time.Second)
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}

	return cfg
}

// Timeout returns the HTTP timeout as a duration.
func (c ITunesConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// HistoryEnabled reports whether recent searches are recorded (default: true).
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// HistorySize returns the number of recent searches to show.
func (c *Config) HistorySize() int {
	if c.History.Size <= 0 {
		return DefaultHistorySize
	}
	return c.History.Size
}

// ArtworkEnabled reports whether artwork is downloaded (default: true).
func (c *Config) ArtworkEnabled() bool {
	return c.Artwork.Enabled == nil || *c.Artwork.Enabled
}
