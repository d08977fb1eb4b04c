package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"tunedeck.click/internal/device"
	"tunedeck.click/internal/playlist"
	"tunedeck.click/internal/strategy"
)

// ErrNotConfigured is returned when playback is requested before a
// playlist, strategy and device have all been bound.
var ErrNotConfigured = errors.New("engine not configured")

// Engine advances playback: it pulls the next track from the bound
// strategy and pushes it to the bound device. The engine holds non-owning
// references; the session controller owns the playlist, strategy and
// device and rebinds them on reconfiguration.
//
// Engine is not safe for concurrent use. Rebinding is multi-step and must
// not be interleaved with PlayNext by another goroutine.
type Engine struct {
	playlist playlist.View
	strategy strategy.PlayStrategy
	device   device.OutputDevice
}

// New creates an unconfigured engine.
func New() *Engine {
	return &Engine{}
}

// LoadPlaylist binds the playlist view to play from.
func (e *Engine) LoadPlaylist(view playlist.View) {
	e.playlist = view
}

// SetStrategy binds the traversal strategy and immediately resets it, so
// a newly wired strategy always starts from its initial state.
func (e *Engine) SetStrategy(s strategy.PlayStrategy) {
	e.strategy = s
	e.strategy.Reset()
}

// SetDevice binds the output device.
func (e *Engine) SetDevice(d device.OutputDevice) {
	e.device = d
}

// PlayNext plays one track: the strategy picks it, the device renders it.
// Strategy errors propagate verbatim. The played track is returned for
// observability (history recording, logging).
func (e *Engine) PlayNext() (playlist.Track, error) {
	if e.playlist == nil || e.strategy == nil || e.device == nil {
		slog.Error("playback requested before configuration",
			"playlist_bound", e.playlist != nil,
			"strategy_bound", e.strategy != nil,
			"device_bound", e.device != nil)
		return playlist.Track{}, ErrNotConfigured
	}

	track, err := e.strategy.NextSong(e.playlist)
	if err != nil {
		return playlist.Track{}, err
	}

	if err := e.device.PlaySound(track); err != nil {
		slog.Error("device render failed", "title", track.Title, "error", err)
		return playlist.Track{}, fmt.Errorf("play sound: %w", err)
	}

	return track, nil
}

// PlayMultiple calls PlayNext exactly count times in order and stops at
// the first failure, surfacing exactly that error.
func (e *Engine) PlayMultiple(count int) error {
	slog.Debug("playing multiple tracks", "count", count)

	for i := 0; i < count; i++ {
		if _, err := e.PlayNext(); err != nil {
			slog.Error("playback aborted", "completed", i, "requested", count, "error", err)
			return err
		}
	}
	return nil
}
