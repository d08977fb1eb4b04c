// Package session provides the single entry point coordinating playlist,
// play strategy and output device for one playback session.
package session

import (
	"log/slog"
	"time"

	"tunedeck.click/internal/device"
	"tunedeck.click/internal/engine"
	"tunedeck.click/internal/history"
	"tunedeck.click/internal/playlist"
	"tunedeck.click/internal/strategy"
)

// Controller owns the playlist and the currently configured device and
// strategy, and exposes a simplified configure/play surface. The engine
// holds non-owning views into Controller-owned state.
//
// Controller assumes a single caller: it performs no internal locking.
// Configure and ConfigureCustom rebind device, strategy and playlist in
// multiple steps, and index-based strategies capture indices against the
// playlist at each play, so callers must not interleave configuration or
// playlist mutation with in-flight playback.
type Controller struct {
	playlist        *playlist.Playlist
	deviceFactory   device.Factory
	strategyFactory strategy.Factory
	engine          *engine.Engine

	device   device.OutputDevice
	strategy strategy.PlayStrategy
	devType  device.Type

	recorder history.Recorder
}

// Option configures a Controller.
type Option func(*Controller)

// WithDeviceFactory overrides the device factory (used in tests to inject
// an output sink).
func WithDeviceFactory(f device.Factory) Option {
	return func(c *Controller) {
		c.deviceFactory = f
	}
}

// WithStrategyFactory overrides the strategy factory (used in tests to
// inject a deterministic random source).
func WithStrategyFactory(f strategy.Factory) Option {
	return func(c *Controller) {
		c.strategyFactory = f
	}
}

// WithRecorder attaches a play-history recorder. Recorder failures are
// logged and never affect playback results.
func WithRecorder(r history.Recorder) Option {
	return func(c *Controller) {
		c.recorder = r
	}
}

// NewController creates a session with an empty playlist and no device or
// strategy configured.
func NewController(opts ...Option) *Controller {
	slog.Debug("creating new session controller")

	c := &Controller{
		playlist:        playlist.New(),
		deviceFactory:   device.NewFactory(),
		strategyFactory: strategy.NewFactory(),
		engine:          engine.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AddSong appends a track to the session playlist.
func (c *Controller) AddSong(track playlist.Track) {
	slog.Debug("adding song to playlist", "title", track.Title, "artist", track.Artist)
	c.playlist.Add(track)
}

// RemoveSong removes the track at the given index. Out-of-range indices
// are a silent no-op, matching the playlist contract.
func (c *Controller) RemoveSong(index int) {
	slog.Debug("removing song from playlist", "index", index)
	c.playlist.Remove(index)
}

// Configure builds a fresh device and strategy of the requested types and
// wires them, with the session playlist, into the engine. Any previously
// configured device and strategy are discarded once the new ones are
// fully wired. Device construction failures and unrecognized strategy
// types propagate unchanged.
func (c *Controller) Configure(deviceType device.Type, strategyType strategy.Type) error {
	slog.Info("configuring session", "device", deviceType, "strategy", strategyType)

	dev, err := c.deviceFactory.CreateDevice(deviceType)
	if err != nil {
		return err
	}

	strat, err := c.strategyFactory.CreateStrategy(strategyType)
	if err != nil {
		return err
	}

	c.wire(deviceType, dev, strat)
	return nil
}

// ConfigureCustom builds a fresh device and a custom queue strategy, and
// assigns the given playlist-index queue before wiring. The strategy is
// obtained through the factory's typed construction path, so no type
// assertion is needed to reach SetQueue.
func (c *Controller) ConfigureCustom(deviceType device.Type, queue []int) error {
	slog.Info("configuring session with custom queue", "device", deviceType, "queue_length", len(queue))

	dev, err := c.deviceFactory.CreateDevice(deviceType)
	if err != nil {
		return err
	}

	strat := c.strategyFactory.CreateCustomQueue()
	strat.SetQueue(queue)

	c.wire(deviceType, dev, strat)
	return nil
}

// wire rebinds the engine and replaces the owned device and strategy.
// SetStrategy resets the strategy, so reconfiguration always restarts
// traversal even when the strategy kind is unchanged.
func (c *Controller) wire(deviceType device.Type, dev device.OutputDevice, strat strategy.PlayStrategy) {
	c.engine.SetDevice(dev)
	c.engine.SetStrategy(strat)
	c.engine.LoadPlaylist(c.playlist)

	c.device = dev
	c.strategy = strat
	c.devType = deviceType
}

// PlayNext plays a single track, delegating to the engine. Engine and
// strategy errors propagate unchanged.
func (c *Controller) PlayNext() error {
	track, err := c.engine.PlayNext()
	if err != nil {
		return err
	}

	c.record(track)
	return nil
}

// PlayMultiple plays count tracks in order, stopping at the first failure.
func (c *Controller) PlayMultiple(count int) error {
	for i := 0; i < count; i++ {
		if err := c.PlayNext(); err != nil {
			return err
		}
	}
	return nil
}

// Playlist returns a read-only view of the session playlist.
func (c *Controller) Playlist() playlist.View {
	return c.playlist
}

func (c *Controller) record(track playlist.Track) {
	if c.recorder == nil {
		return
	}

	err := c.recorder.RecordPlay(history.Entry{
		Timestamp: time.Now(),
		Device:    c.devType.String(),
		Title:     track.Title,
		Artist:    track.Artist,
	})
	if err != nil {
		// History is observability only - a failed insert must not turn a
		// successful render into a playback error
		slog.Error("failed to record play history", "title", track.Title, "error", err)
	}
}
