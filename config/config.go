// Package config loads the TOML-backed defaults for memory capacity,
// step budget, and trace output, following the reference emulator's
// config.Config pattern adapted to this processor's boot protocol.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/ianwlarson/sodapop/vm"
)

// Config holds memory capacity, step budget, entry point and trace
// settings. The CLI drivers do not load it; they take their defaults from
// the vm package constants and their flags.
type Config struct {
	Execution struct {
		MemoryCapacity int    `toml:"memory_capacity"`
		MaxCycles      int    `toml:"max_cycles"`
		EntryPoint     uint32 `toml:"entry_point"`
	} `toml:"execution"`

	Trace struct {
		Enabled    bool   `toml:"enabled"`
		OutputFile string `toml:"output_file"`
		Format     string `toml:"format"` // text|json
	} `toml:"trace"`
}

// Default returns a Config with the built-in defaults from spec.md §3
// and §6: a 10^6-byte memory, a 1000-instruction budget, and the fixed
// entry offset 12.
func Default() *Config {
	cfg := &Config{}
	cfg.Execution.MemoryCapacity = vm.DefaultMemoryCapacity
	cfg.Execution.MaxCycles = vm.DefaultMaxCycles
	cfg.Execution.EntryPoint = vm.DefaultEntryPoint
	cfg.Trace.Enabled = false
	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.Format = "text"
	return cfg
}

// GetConfigPath returns the platform-specific config file path,
// creating its parent directory if necessary.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "sodapop")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "sodapop")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}
	return filepath.Join(configDir, "config.toml")
}

// Load reads the default config file, falling back to Default() when it
// does not exist.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads a TOML config from path, falling back to Default() when
// the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
