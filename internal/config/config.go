// Package config loads jsonviz settings from an optional TOML file with
// environment variable overrides.
//
// The file lives at $XDG_CONFIG_HOME/jsonviz/config.toml (falling back to the
// platform config directory) and every field is optional:
//
//	addr = ":8090"
//	document_ttl = "1h"
//	max_upload_bytes = 10485760
//	max_depth = 200
//	default_format = "html"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/LizeLing/JSONVisualizer/pkg/jsontree"
)

// Defaults applied when neither the file nor the environment sets a value.
const (
	DefaultAddr           = ":8090"
	DefaultDocumentTTL    = time.Hour
	DefaultMaxUploadBytes = 10 << 20
	DefaultMaxDepth       = jsontree.DefaultMaxDepth
	DefaultFormat         = "html"
)

// Config holds runtime settings shared by the CLI and the HTTP server.
type Config struct {
	// Addr is the listen address for `jsonviz serve`.
	Addr string `toml:"addr"`

	// DocumentTTL is how long uploaded documents are kept in memory.
	DocumentTTL time.Duration `toml:"-"`

	// MaxUploadBytes caps the request body size for document uploads.
	MaxUploadBytes int64 `toml:"max_upload_bytes"`

	// MaxDepth bounds tree building and search recursion.
	MaxDepth int `toml:"max_depth"`

	// DefaultFormat is the render format used when -f is not given.
	DefaultFormat string `toml:"default_format"`
}

// fileConfig mirrors Config for decoding; durations arrive as strings.
type fileConfig struct {
	Addr           string `toml:"addr"`
	DocumentTTL    string `toml:"document_ttl"`
	MaxUploadBytes int64  `toml:"max_upload_bytes"`
	MaxDepth       int    `toml:"max_depth"`
	DefaultFormat  string `toml:"default_format"`
}

// Load reads configuration from the default file location, if present, and
// applies environment overrides. A missing file is not an error.
func Load() (Config, error) {
	return LoadFile(defaultPath())
}

// LoadFile reads configuration from path. An empty path or missing file
// yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Config{
		Addr:           DefaultAddr,
		DocumentTTL:    DefaultDocumentTTL,
		MaxUploadBytes: DefaultMaxUploadBytes,
		MaxDepth:       DefaultMaxDepth,
		DefaultFormat:  DefaultFormat,
	}

	if path != "" {
		var fc fileConfig
		switch _, err := toml.DecodeFile(path, &fc); {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if fc.Addr != "" {
				cfg.Addr = fc.Addr
			}
			if fc.DocumentTTL != "" {
				d, err := time.ParseDuration(fc.DocumentTTL)
				if err != nil {
					return cfg, fmt.Errorf("config %s: invalid document_ttl: %w", path, err)
				}
				cfg.DocumentTTL = d
			}
			if fc.MaxUploadBytes > 0 {
				cfg.MaxUploadBytes = fc.MaxUploadBytes
			}
			if fc.MaxDepth > 0 {
				cfg.MaxDepth = fc.MaxDepth
			}
			if fc.DefaultFormat != "" {
				cfg.DefaultFormat = fc.DefaultFormat
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("JSONVIZ_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("JSONVIZ_DOCUMENT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.DocumentTTL = d
		}
	}
	if v := os.Getenv("JSONVIZ_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("JSONVIZ_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxDepth = n
		}
	}
	if v := os.Getenv("JSONVIZ_DEFAULT_FORMAT"); v != "" {
		cfg.DefaultFormat = v
	}
}

// defaultPath returns the per-user config file location, or empty when the
// platform config directory cannot be determined.
func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jsonviz", "config.toml")
}
