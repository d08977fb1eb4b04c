package config

import (
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
)

// XDGDirs provides XDG Base Directory compliant paths for tunedeck
type XDGDirs struct{}

// NewXDGDirs creates a new XDG directory manager
func NewXDGDirs() *XDGDirs {
	return &XDGDirs{}
}

// GetConfigPaths returns prioritized paths where config files can be found.
// Search order: user config dir, then system config dirs.
func (x *XDGDirs) GetConfigPaths(filename string) []string {
	var paths []string

	userPath := filepath.Join(xdg.ConfigHome, "tunedeck", filename)
	paths = append(paths, userPath)

	for _, configDir := range xdg.ConfigDirs {
		paths = append(paths, filepath.Join(configDir, "tunedeck", filename))
	}

	slog.Debug("generated config paths",
		"filename", filename,
		"total_paths", len(paths),
		"user_path", userPath)

	return paths
}

// GetCachePath returns the cache directory path for a specific purpose
func (x *XDGDirs) GetCachePath(purpose string) string {
	baseDir := "tunedeck"
	if purpose != "" {
		baseDir = filepath.Join(baseDir, purpose)
	}

	return filepath.Join(xdg.CacheHome, baseDir)
}
