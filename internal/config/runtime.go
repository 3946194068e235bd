// Package config provides centralized configuration for fitjournal runtime values.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for data directories.
	AppName = "fitjournal"

	// DefaultHistoryFile is the flat history file, relative to the working directory.
	DefaultHistoryFile = "workout_history.txt"

	// StoreFile selects the flat text history file.
	StoreFile = "file"
	// StoreBadger selects the structured Badger history store.
	StoreBadger = "badger"
)

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// History store configuration
	History HistoryConfig

	// Storage safety configuration
	Storage StorageConfig
}

// HistoryConfig selects and locates the workout history store.
type HistoryConfig struct {
	// Store is the backend: "file" or "badger".
	// Default: "file"
	Store string

	// File is the flat history file path.
	// Default: workout_history.txt in the working directory
	File string

	// DatabasePath is the Badger directory. ":memory:" keeps it in memory.
	// Default: $XDG_DATA_HOME/fitjournal/db
	DatabasePath string
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// MinFreeSpace is the minimum free space required before appending.
	// Default: 1MB (1024 * 1024 bytes)
	MinFreeSpace uint64
}

// DefaultDatabasePath returns the default Badger path following the XDG spec.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		History: HistoryConfig{
			Store:        StoreFile,
			File:         DefaultHistoryFile,
			DatabasePath: DefaultDatabasePath(),
		},
		Storage: StorageConfig{
			MinFreeSpace: 1024 * 1024, // 1MB
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("FITJOURNAL_STORE"); v != "" {
		c.History.Store = v
	}
	if v := os.Getenv("FITJOURNAL_HISTORY_FILE"); v != "" {
		c.History.File = v
	}
	if v := os.Getenv("FITJOURNAL_DATABASE"); v != "" {
		c.History.DatabasePath = v
	}

	if v := os.Getenv("FITJOURNAL_MIN_FREE_SPACE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Storage.MinFreeSpace = n
		}
	}
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
