package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":3000" || cfg.DataDir != "data" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SuggestLatency != 1500*time.Millisecond {
		t.Errorf("latency default = %v", cfg.SuggestLatency)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "addr: \":8080\"\ndata_dir: /var/lib/resume\nsuggest_latency: 10ms\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" || cfg.DataDir != "/var/lib/resume" {
		t.Errorf("yaml not applied: %+v", cfg)
	}
	if cfg.SuggestLatency != 10*time.Millisecond {
		t.Errorf("latency = %v", cfg.SuggestLatency)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":8080\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "9999")
	t.Setenv("RESUME_DATA_DIR", "/tmp/resume")
	t.Setenv("SUGGEST_LATENCY", "0s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("PORT override lost: %q", cfg.Addr)
	}
	if cfg.DataDir != "/tmp/resume" {
		t.Errorf("data dir override lost: %q", cfg.DataDir)
	}
	if cfg.SuggestLatency != 0 {
		t.Errorf("latency override lost: %v", cfg.SuggestLatency)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml accepted")
	}

	t.Setenv("SUGGEST_LATENCY", "soon")
	if _, err := Load(""); err == nil {
		t.Error("unparsable SUGGEST_LATENCY accepted")
	}
}
