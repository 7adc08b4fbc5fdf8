// Package config loads server configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string
	DataDir        string
	SnapshotsDSN   string
	ChromePath     string
	SuggestLatency time.Duration
	SuggestSeed    int64
}

// fileConfig is the on-disk shape. Durations are strings so the YAML stays
// human-editable ("10ms", "2s").
type fileConfig struct {
	Addr           string `yaml:"addr"`
	DataDir        string `yaml:"data_dir"`
	SnapshotsDSN   string `yaml:"snapshots_dsn"`
	ChromePath     string `yaml:"chrome_path"`
	SuggestLatency string `yaml:"suggest_latency"`
	SuggestSeed    int64  `yaml:"suggest_seed"`
}

func defaults() Config {
	return Config{
		Addr:           ":3000",
		DataDir:        "data",
		SuggestLatency: 1500 * time.Millisecond,
	}
}

// Load reads the YAML file at path when it exists, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			var fc fileConfig
			if err := yaml.Unmarshal(raw, &fc); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
			if fc.Addr != "" {
				cfg.Addr = fc.Addr
			}
			if fc.DataDir != "" {
				cfg.DataDir = fc.DataDir
			}
			if fc.SnapshotsDSN != "" {
				cfg.SnapshotsDSN = fc.SnapshotsDSN
			}
			if fc.ChromePath != "" {
				cfg.ChromePath = fc.ChromePath
			}
			if fc.SuggestLatency != "" {
				d, err := time.ParseDuration(fc.SuggestLatency)
				if err != nil {
					return Config{}, fmt.Errorf("parse suggest_latency: %w", err)
				}
				cfg.SuggestLatency = d
			}
			cfg.SuggestSeed = fc.SuggestSeed
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	cfg.DataDir = getEnv("RESUME_DATA_DIR", cfg.DataDir)
	cfg.SnapshotsDSN = getEnv("SNAPSHOTS_DATABASE_URL", cfg.SnapshotsDSN)
	cfg.ChromePath = getEnv("CHROME_PATH", cfg.ChromePath)
	if v := os.Getenv("SUGGEST_LATENCY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse SUGGEST_LATENCY: %w", err)
		}
		cfg.SuggestLatency = d
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
