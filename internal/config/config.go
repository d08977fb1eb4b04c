package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"tunedeck.click/internal/device"
	"tunedeck.click/internal/strategy"
)

// FileLoggingConfig represents file-based logging configuration
type FileLoggingConfig struct {
	Enabled    bool   `json:"enabled"`      // Whether file logging is enabled
	Filename   string `json:"filename"`     // Log file path (empty = XDG cache path)
	MaxSizeMB  int    `json:"max_size_mb"`  // Max file size in MB before rotation
	MaxBackups int    `json:"max_backups"`  // Max number of backup files to keep
	MaxAgeDays int    `json:"max_age_days"` // Max age in days before deletion
	Compress   bool   `json:"compress"`     // Whether to compress rotated files
}

// Config represents tunedeck configuration
type Config struct {
	DefaultDevice   string             `json:"default_device"`         // Output device (bluetooth, wired, headphones)
	DefaultStrategy string             `json:"default_strategy"`       // Traversal policy (sequential, random, custom_queue)
	LogLevel        string             `json:"log_level"`              // Log level (debug, info, warn, error)
	HistoryEnabled  bool               `json:"history_enabled"`        // Whether play history is recorded
	HistoryPath     string             `json:"history_path"`           // History database path (empty = cache path)
	FileLogging     *FileLoggingConfig `json:"file_logging,omitempty"` // File logging configuration
}

// ConfigManager handles loading and validating configuration
type ConfigManager struct {
	fs  afero.Fs
	xdg *XDGDirs
}

// NewConfigManager creates a configuration manager on the OS filesystem
func NewConfigManager() *ConfigManager {
	return NewConfigManagerWithFs(afero.NewOsFs())
}

// NewConfigManagerWithFs creates a configuration manager on the given
// filesystem (in-memory in tests)
func NewConfigManagerWithFs(fs afero.Fs) *ConfigManager {
	slog.Debug("creating new config manager")
	return &ConfigManager{
		fs:  fs,
		xdg: NewXDGDirs(),
	}
}

// GetDefaultConfig returns the default configuration
func (cm *ConfigManager) GetDefaultConfig() *Config {
	defaultConfig := &Config{
		DefaultDevice:   device.Headphones.String(),
		DefaultStrategy: strategy.Sequential.String(),
		LogLevel:        "warn",
		HistoryEnabled:  true,
		HistoryPath:     "", // Empty = cache path
		FileLogging: &FileLoggingConfig{
			Enabled:    false,
			Filename:   "", // Empty = XDG cache path
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}

	slog.Debug("generated default config",
		"default_device", defaultConfig.DefaultDevice,
		"default_strategy", defaultConfig.DefaultStrategy,
		"log_level", defaultConfig.LogLevel,
		"history_enabled", defaultConfig.HistoryEnabled)

	return defaultConfig
}

// LoadFromFile loads configuration from a specific file
func (cm *ConfigManager) LoadFromFile(filePath string) (*Config, error) {
	slog.Debug("loading config from file", "file_path", filePath)

	data, err := afero.ReadFile(cm.fs, filePath)
	if err != nil {
		slog.Error("failed to read config file", "file_path", filePath, "error", err)
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config JSON", "file_path", filePath, "error", err)
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cm.ValidateConfig(&config); err != nil {
		slog.Error("config validation failed", "file_path", filePath, "error", err)
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	slog.Debug("config loaded successfully",
		"file_path", filePath,
		"default_device", config.DefaultDevice,
		"default_strategy", config.DefaultStrategy)

	return &config, nil
}

// LoadConfig loads configuration using XDG path discovery, falling back
// to defaults when no config file exists
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	configPaths := cm.xdg.GetConfigPaths("config.json")

	slog.Debug("searching for config file", "paths", configPaths)

	for _, configPath := range configPaths {
		exists, err := afero.Exists(cm.fs, configPath)
		if err != nil || !exists {
			continue
		}
		slog.Debug("found config file", "path", configPath)
		return cm.LoadFromFile(configPath)
	}

	slog.Debug("no config file found, using defaults")
	return cm.GetDefaultConfig(), nil
}

// ValidateConfig validates configuration values
func (cm *ConfigManager) ValidateConfig(config *Config) error {
	var problems []string

	if config.DefaultDevice != "" {
		if _, err := device.ParseType(config.DefaultDevice); err != nil {
			problems = append(problems, fmt.Sprintf("invalid default device '%s'", config.DefaultDevice))
		}
	}

	if config.DefaultStrategy != "" {
		if _, err := strategy.ParseType(config.DefaultStrategy); err != nil {
			problems = append(problems, fmt.Sprintf("invalid default strategy '%s'", config.DefaultStrategy))
		}
	}

	if config.LogLevel != "" {
		if _, err := ParseLogLevel(config.LogLevel); err != nil {
			problems = append(problems, fmt.Sprintf("invalid log level '%s', must be one of: debug, info, warn, error", config.LogLevel))
		}
	}

	if config.FileLogging != nil {
		fileLogging := config.FileLogging

		if fileLogging.MaxSizeMB < 0 {
			problems = append(problems, fmt.Sprintf("file logging max_size_mb must be >= 0, got %d", fileLogging.MaxSizeMB))
		}
		if fileLogging.MaxBackups < 0 {
			problems = append(problems, fmt.Sprintf("file logging max_backups must be >= 0, got %d", fileLogging.MaxBackups))
		}
		if fileLogging.MaxAgeDays < 0 {
			problems = append(problems, fmt.Sprintf("file logging max_age_days must be >= 0, got %d", fileLogging.MaxAgeDays))
		}
	}

	if len(problems) > 0 {
		errMsg := strings.Join(problems, "; ")
		slog.Error("config validation failed", "errors", errMsg)
		return fmt.Errorf("config validation failed: %s", errMsg)
	}

	slog.Debug("config validation passed")
	return nil
}

// ParseLogLevel parses a log level string to slog.Level
func ParseLogLevel(logLevel string) (slog.Level, error) {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level '%s', must be one of: debug, info, warn, error", logLevel)
	}
}

// ResolveLogFilePath resolves the log file path using the XDG cache
// directory when filename is empty
func (cm *ConfigManager) ResolveLogFilePath(filename string) string {
	if filename != "" {
		return filename
	}

	return filepath.Join(cm.xdg.GetCachePath("logs"), "tunedeck.log")
}

// ApplyLogLevelWithWriter configures slog with the specified log level and writer
func (cm *ConfigManager) ApplyLogLevelWithWriter(logLevel string, writer io.Writer) error {
	if logLevel == "" {
		slog.Debug("no log level specified, keeping current slog configuration")
		return nil
	}

	level, err := ParseLogLevel(logLevel)
	if err != nil {
		slog.Error("invalid log level for slog configuration", "log_level", logLevel, "error", err)
		return err
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	slog.Debug("slog configured successfully", "log_level", logLevel, "slog_level", level)
	return nil
}
