package cli

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"tunedeck.click/internal/config"
)

// setupLogging configures the default slog logger from the loaded config.
// Log lines always go to stderr; when file logging is enabled they also go
// to a size-rotated file. When stderr is not an interactive terminal and a
// log file is configured, stderr is skipped so piped output stays clean.
func (c *CLI) setupLogging(cfg *config.Config, stderr io.Writer) {
	level := slog.LevelWarn
	if cfg.LogLevel != "" {
		if parsed, err := config.ParseLogLevel(cfg.LogLevel); err == nil {
			level = parsed
		}
	}

	var writers []io.Writer

	fileEnabled := cfg.FileLogging != nil && cfg.FileLogging.Enabled
	if fileEnabled {
		logFilePath := c.configManager.ResolveLogFilePath(cfg.FileLogging.Filename)

		// Lumberjack handles rotation; it creates the file lazily
		fileWriter := &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    cfg.FileLogging.MaxSizeMB,
			MaxBackups: cfg.FileLogging.MaxBackups,
			MaxAge:     cfg.FileLogging.MaxAgeDays,
			Compress:   cfg.FileLogging.Compress,
		}
		writers = append(writers, fileWriter)
	}

	if !fileEnabled || c.isInteractiveTerminal(stderrFd) {
		writers = append(writers, stderr)
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	slog.Debug("logging setup completed",
		"level", level.String(),
		"writers", len(writers),
		"file_enabled", fileEnabled)
}

// stderrFd is the file descriptor checked for terminal detection
const stderrFd = 2

func (c *CLI) isInteractiveTerminal(fd int) bool {
	if c.terminalDetector == nil {
		c.terminalDetector = &DefaultTerminalDetector{}
	}
	return c.terminalDetector.IsTerminal(fd)
}
