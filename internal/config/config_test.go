package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DOCGENIUS_ADDR", "")
	t.Setenv("DOCGENIUS_DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want default", cfg.Addr)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DOCGENIUS_ADDR", ":9090")
	t.Setenv("DOCGENIUS_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadRejectsBadDebug(t *testing.T) {
	t.Setenv("DOCGENIUS_DEBUG", "maybe")

	if _, err := Load(); err == nil {
		t.Error("Load() accepted an unparsable DOCGENIUS_DEBUG")
	}
}
