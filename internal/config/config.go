// Package config loads soundqueue's engine configuration from TOML files
// via koanf, mirroring the layered file-provider pattern the rest of the
// codebase uses for its own settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the settings needed to construct and run the queue engine
// outside of tests: how large the popularity index is, where a snapshot
// of the queue is persisted between runs, and how verbosely to log.
type Config struct {
	HeapCapacity int    `koanf:"heap_capacity"` // max distinct song IDs tracked for recommendations
	SnapshotPath string `koanf:"snapshot_path"` // sqlite file storing the last saved queue
	SeedCatalog  string `koanf:"seed_catalog"`  // optional path to a catalog file to preload on startup
	LogLevel     string `koanf:"log_level"`     // "debug", "info", "warn", or "error"
}

const (
	defaultHeapCapacity = 512
	defaultLogLevel     = "info"
)

// Load reads configuration from, in ascending priority order, the XDG
// config directory and a ./config.toml in the current directory, then
// fills in defaults for anything left unset.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		HeapCapacity: defaultHeapCapacity,
		LogLevel:     defaultLogLevel,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.HeapCapacity <= 0 {
		cfg.HeapCapacity = defaultHeapCapacity
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if cfg.SnapshotPath != "" {
		cfg.SnapshotPath = expandPath(cfg.SnapshotPath)
	} else {
		cfg.SnapshotPath = DefaultSnapshotPath()
	}
	if cfg.SeedCatalog != "" {
		cfg.SeedCatalog = expandPath(cfg.SeedCatalog)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	if path, err := xdg.ConfigFile("soundqueue/config.toml"); err == nil {
		paths = append(paths, path)
	}

	// pwd config.toml wins over the XDG-managed one
	paths = append(paths, "config.toml")

	return paths
}

// DefaultSnapshotPath returns the XDG data-directory location used when
// no snapshot_path is configured.
func DefaultSnapshotPath() string {
	path, err := xdg.DataFile("soundqueue/snapshot.db")
	if err != nil {
		return "soundqueue-snapshot.db"
	}
	return path
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
