package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want default %q", cfg.Addr, DefaultAddr)
	}
	if cfg.DocumentTTL != DefaultDocumentTTL {
		t.Errorf("DocumentTTL = %v, want %v", cfg.DocumentTTL, DefaultDocumentTTL)
	}
	if cfg.MaxUploadBytes != DefaultMaxUploadBytes {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
	if cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", cfg.MaxDepth, DefaultMaxDepth)
	}
	if cfg.DefaultFormat != DefaultFormat {
		t.Errorf("DefaultFormat = %q", cfg.DefaultFormat)
	}
}

func TestLoadFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
addr = ":9999"
document_ttl = "30m"
max_upload_bytes = 1024
max_depth = 64
default_format = "text"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.DocumentTTL != 30*time.Minute {
		t.Errorf("DocumentTTL = %v", cfg.DocumentTTL)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
	if cfg.MaxDepth != 64 {
		t.Errorf("MaxDepth = %d", cfg.MaxDepth)
	}
	if cfg.DefaultFormat != "text" {
		t.Errorf("DefaultFormat = %q", cfg.DefaultFormat)
	}
}

func TestLoadFileBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`document_ttl = "soon"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JSONVIZ_ADDR", ":7777")
	t.Setenv("JSONVIZ_DOCUMENT_TTL", "5m")
	t.Setenv("JSONVIZ_MAX_DEPTH", "32")
	t.Setenv("JSONVIZ_DEFAULT_FORMAT", "json")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":7777" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.DocumentTTL != 5*time.Minute {
		t.Errorf("DocumentTTL = %v", cfg.DocumentTTL)
	}
	if cfg.MaxDepth != 32 {
		t.Errorf("MaxDepth = %d", cfg.MaxDepth)
	}
	if cfg.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q", cfg.DefaultFormat)
	}
}
