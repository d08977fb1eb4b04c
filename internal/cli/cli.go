package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"tunedeck.click/internal/config"
	"tunedeck.click/internal/device"
	"tunedeck.click/internal/history"
	"tunedeck.click/internal/playlist"
	"tunedeck.click/internal/session"
	"tunedeck.click/internal/strategy"
)

const Version = "1.0.0"

// CLI represents the command-line interface
type CLI struct {
	rootCmd          *cobra.Command
	configManager    *config.ConfigManager
	terminalDetector TerminalDetector
}

// NewCLI creates a new CLI instance
func NewCLI() *CLI {
	slog.Debug("creating new CLI instance")

	c := &CLI{
		configManager: config.NewConfigManager(),
	}

	rootCmd := &cobra.Command{
		Use:   "tunedeck [tracks...]",
		Short: "Pluggable playback orchestrator",
		Long: "Tunedeck sequences songs from a playlist through a selectable traversal\n" +
			"strategy and renders them on a selectable output device. Tracks are given\n" +
			"as 'Title|Artist' arguments; without arguments a demo playlist is used.",
		RunE:          c.runPlayE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().String("config", "", "Path to config file")
	rootCmd.Flags().String("device", "", "Output device (bluetooth, wired, headphones)")
	rootCmd.Flags().String("strategy", "", "Play strategy (sequential, random, custom_queue)")
	rootCmd.Flags().IntSlice("queue", nil, "Playlist indices for the custom queue strategy")
	rootCmd.Flags().Int("count", 0, "Number of tracks to play (default: playlist size)")
	rootCmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("no-history", false, "Disable play history recording")
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	rootCmd.AddCommand(newHistoryCommand(c))

	c.rootCmd = rootCmd
	return c
}

// Run executes the CLI with the given arguments and I/O streams, returning
// the process exit code.
func (c *CLI) Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c.rootCmd.SetArgs(args[1:])
	c.rootCmd.SetIn(stdin)
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)

	if err := c.rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runPlayE is the root command handler
func (c *CLI) runPlayE(cmd *cobra.Command, args []string) error {
	if version, _ := cmd.Flags().GetBool("version"); version {
		cmd.Printf("tunedeck version %s\n", Version)
		return nil
	}

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	c.setupLogging(cfg, cmd.ErrOrStderr())

	ctrl, cleanup, err := c.buildSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	tracks, err := parseTracks(args)
	if err != nil {
		return err
	}
	for _, track := range tracks {
		ctrl.AddSong(track)
	}

	deviceFlag, _ := cmd.Flags().GetString("device")
	strategyFlag, _ := cmd.Flags().GetString("strategy")
	queueFlag, _ := cmd.Flags().GetIntSlice("queue")
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		count = ctrl.Playlist().Len()
	}

	// With no selection flags, run the demonstration phases
	if deviceFlag == "" && strategyFlag == "" && len(queueFlag) == 0 {
		return runDemo(ctrl, count)
	}

	if deviceFlag == "" {
		deviceFlag = cfg.DefaultDevice
	}
	deviceType, err := device.ParseType(deviceFlag)
	if err != nil {
		return err
	}

	// An explicit queue selects the custom queue strategy
	if len(queueFlag) > 0 {
		if strategyFlag != "" && strategyFlag != strategy.CustomQueue.String() {
			return fmt.Errorf("--queue requires the %s strategy, got %s", strategy.CustomQueue, strategyFlag)
		}
		if err := ctrl.ConfigureCustom(deviceType, queueFlag); err != nil {
			return err
		}
		return ctrl.PlayMultiple(count)
	}

	if strategyFlag == "" {
		strategyFlag = cfg.DefaultStrategy
	}
	strategyType, err := strategy.ParseType(strategyFlag)
	if err != nil {
		return err
	}

	if err := ctrl.Configure(deviceType, strategyType); err != nil {
		return err
	}
	return ctrl.PlayMultiple(count)
}

// loadConfig loads configuration from the --config flag or XDG discovery
// and applies flag overrides
func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		cfg, err = c.configManager.LoadFromFile(configFile)
	} else {
		cfg, err = c.configManager.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	if logLevel, _ := cmd.Flags().GetString("log-level"); logLevel != "" {
		if _, err := config.ParseLogLevel(logLevel); err != nil {
			return nil, err
		}
		cfg.LogLevel = logLevel
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.HistoryEnabled = false
	}

	return cfg, nil
}

// buildSession wires a session controller, attaching a play-history
// recorder when enabled. The returned cleanup closes the history database.
func (c *CLI) buildSession(cmd *cobra.Command, cfg *config.Config) (*session.Controller, func(), error) {
	// Devices render on the command's stdout so output can be captured
	opts := []session.Option{
		session.WithDeviceFactory(device.NewFactoryWithWriter(cmd.OutOrStdout())),
	}
	cleanup := func() {}

	if cfg.HistoryEnabled {
		dbPath := cfg.HistoryPath
		if dbPath == "" {
			var err error
			dbPath, err = history.DefaultDatabasePath()
			if err != nil {
				return nil, nil, err
			}
		}

		db, err := history.NewDatabase(dbPath)
		if err != nil {
			// History is optional: degrade to a session without recording
			slog.Error("failed to open history database, continuing without history",
				"path", dbPath, "error", err)
		} else {
			opts = append(opts, session.WithRecorder(history.NewDBRecorder(db)))
			cleanup = func() { db.Close() }
		}
	}

	return session.NewController(opts...), cleanup, nil
}

// runDemo exercises each strategy across the device set, mirroring the
// documented three-phase demonstration.
func runDemo(ctrl *session.Controller, count int) error {
	slog.Info("running demonstration phases", "count", count)

	if err := ctrl.Configure(device.Headphones, strategy.Sequential); err != nil {
		return err
	}
	if err := ctrl.PlayMultiple(count); err != nil {
		return err
	}

	if err := ctrl.Configure(device.Bluetooth, strategy.Random); err != nil {
		return err
	}
	if err := ctrl.PlayMultiple(count); err != nil {
		return err
	}

	if err := ctrl.ConfigureCustom(device.Wired, []int{1, 0, 3, 2}); err != nil {
		return err
	}
	return ctrl.PlayMultiple(count)
}

// parseTracks converts 'Title|Artist' arguments into tracks. With no
// arguments the demo playlist is returned.
func parseTracks(args []string) ([]playlist.Track, error) {
	if len(args) == 0 {
		return []playlist.Track{
			{Title: "Lose Yourself", Artist: "Eminem"},
			{Title: "Bohemian Rhapsody", Artist: "Queen"},
			{Title: "Blinding Lights", Artist: "The Weeknd"},
			{Title: "Imagine", Artist: "John Lennon"},
		}, nil
	}

	tracks := make([]playlist.Track, 0, len(args))
	for _, arg := range args {
		title, artist, found := strings.Cut(arg, "|")
		if !found {
			return nil, fmt.Errorf("invalid track %q, expected 'Title|Artist'", arg)
		}
		tracks = append(tracks, playlist.Track{Title: title, Artist: artist})
	}
	return tracks, nil
}

// newHistoryCommand creates the history subcommand listing recent plays
func newHistoryCommand(c *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently played tracks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			c.setupLogging(cfg, cmd.ErrOrStderr())

			dbPath := cfg.HistoryPath
			if dbPath == "" {
				dbPath, err = history.DefaultDatabasePath()
				if err != nil {
					return err
				}
			}

			db, err := history.NewDatabase(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			entries, err := history.RecentPlays(db, limit)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				cmd.Println("No plays recorded yet.")
				return nil
			}
			for _, entry := range entries {
				cmd.Printf("%s  %-10s  %s by %s\n",
					entry.Timestamp.Format("2006-01-02 15:04:05"),
					entry.Device, entry.Title, entry.Artist)
			}
			return nil
		},
	}

	cmd.Flags().String("config", "", "Path to config file")
	cmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().Int("limit", 20, "Maximum number of entries to show")

	return cmd
}
