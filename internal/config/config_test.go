package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml", true)
	if err != nil {
		t.Fatalf("load env-only: %v", err)
	}
	if cfg.Server.HTTPAddr != ":4000" {
		t.Fatalf("http_addr=%q want :4000", cfg.Server.HTTPAddr)
	}
	if cfg.Store.Path != "data/configs.json" {
		t.Fatalf("store path=%q", cfg.Store.Path)
	}
	// The client section drives algoctl's connection defaults.
	if cfg.Client.BaseURL != "http://localhost:4000" {
		t.Fatalf("client base_url=%q", cfg.Client.BaseURL)
	}
	if cfg.Client.Timeout != 8*time.Second {
		t.Fatalf("client timeout=%v want 8s", cfg.Client.Timeout)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  http_addr: ":9999"
store:
  path: /tmp/other.json
client:
  base_url: http://api.internal:9999
  timeout: 2s
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.HTTPAddr != ":9999" {
		t.Fatalf("http_addr=%q", cfg.Server.HTTPAddr)
	}
	if cfg.Store.Path != "/tmp/other.json" {
		t.Fatalf("store path=%q", cfg.Store.Path)
	}
	if cfg.Client.BaseURL != "http://api.internal:9999" {
		t.Fatalf("client base_url=%q", cfg.Client.BaseURL)
	}
	if cfg.Client.Timeout != 2*time.Second {
		t.Fatalf("client timeout=%v", cfg.Client.Timeout)
	}
}
