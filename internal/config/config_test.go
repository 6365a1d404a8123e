package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fedstack/federation-registry/internal/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const baseConfig = `
shutdown_timeout = "45s"

[server]
host = "0.0.0.0"
port = 9090

[database]
name = "registry"
user = "registry"

[logging]
level = "debug"
format = "json"

[pagination]
default_page_size = 25
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", baseConfig)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:9090" {
		t.Errorf("Addr() = %q, want 0.0.0.0:9090", cfg.Server.Addr())
	}
	if cfg.Database.Name != "registry" {
		t.Errorf("Database.Name = %q, want registry", cfg.Database.Name)
	}
	if cfg.ShutdownTimeoutDuration() != 45*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 45s", cfg.ShutdownTimeout)
	}
	if cfg.Pagination.DefaultPageSize != 25 {
		t.Errorf("DefaultPageSize = %d, want 25", cfg.Pagination.DefaultPageSize)
	}
	if cfg.Pagination.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want the default 100", cfg.Pagination.MaxPageSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoadInvalidToml(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", "server = not toml")

	if _, err := config.Load(path); err == nil {
		t.Error("Load() should fail for malformed TOML")
	}
}

func TestFinalizeDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Name = "registry"
	cfg.Database.User = "registry"

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 30s", cfg.ShutdownTimeout)
	}
}

func TestFinalizeRejectsBadTimeout(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: "eventually"}
	cfg.Database.Name = "registry"
	cfg.Database.User = "registry"

	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() should reject unparseable shutdown_timeout")
	}
}

func TestMerge(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: "30s"}
	cfg.Server.Port = 8080
	cfg.Database.Name = "registry"

	overlay := &config.Config{ShutdownTimeout: "60s"}
	overlay.Server.Port = 9000

	cfg.Merge(overlay)

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want 60s", cfg.ShutdownTimeout)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Database.Name != "registry" {
		t.Error("zero overlay values must not overwrite")
	}
}

func TestServerConfigValidation(t *testing.T) {
	cfg := config.ServerConfig{Port: 70000}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() should reject out-of-range ports")
	}

	cfg = config.ServerConfig{ReadTimeout: "fast"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() should reject unparseable timeouts")
	}
}
