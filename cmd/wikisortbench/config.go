package main

import (
	"fmt"
	"os"
	"path/filepath"

	"encoding/json"

	"github.com/tailscale/hujson"
)

// Config holds defaults for wikisortbench subcommands, loaded with layered
// precedence: built-in defaults, then a .wikisortbench.jsonc in the working
// directory, then CLI flags (applied by the caller after LoadConfig returns).
type Config struct {
	Dist      string `json:"dist"`
	N         int    `json:"n"`
	CacheSize int    `json:"cache_size"`
	OutDir    string `json:"out_dir"`
}

func DefaultConfig() Config {
	return Config{
		Dist:      "uniform",
		N:         10000,
		CacheSize: 512,
		OutDir:    ".",
	}
}

// LoadConfig reads .wikisortbench.jsonc from workDir, if present, and
// overlays it on top of DefaultConfig(). A missing file is not an error.
func LoadConfig(workDir string) (Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(workDir, ".wikisortbench.jsonc")
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", errConfigFileRead, path, err)
	}

	std, err := hujson.Standardize(raw)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", errConfigInvalid, path, err)
	}

	var fileCfg Config
	if err := json.Unmarshal(std, &fileCfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", errConfigInvalid, path, err)
	}

	mergeConfig(&cfg, fileCfg)
	return cfg, validateConfig(cfg)
}

func mergeConfig(dst *Config, src Config) {
	if src.Dist != "" {
		dst.Dist = src.Dist
	}
	if src.N != 0 {
		dst.N = src.N
	}
	if src.CacheSize != 0 {
		dst.CacheSize = src.CacheSize
	}
	if src.OutDir != "" {
		dst.OutDir = src.OutDir
	}
}

func validateConfig(cfg Config) error {
	if cfg.N < 0 {
		return fmt.Errorf("%w: n must be non-negative, got %d", errConfigInvalid, cfg.N)
	}
	if cfg.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must be non-negative, got %d", errConfigInvalid, cfg.CacheSize)
	}
	return nil
}
