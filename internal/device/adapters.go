package device

import (
	"fmt"
	"io"
	"log/slog"

	"tunedeck.click/internal/playlist"
)

// The speaker APIs below stand in for vendor SDKs. They are opaque sinks:
// Initialize simulates hardware bring-up and Play emits the rendered line
// on the configured writer.

// BluetoothSpeakerAPI simulates a bluetooth speaker SDK.
type BluetoothSpeakerAPI struct {
	out io.Writer
}

func (a *BluetoothSpeakerAPI) Initialize() error {
	slog.Debug("initializing bluetooth speaker")
	return nil
}

func (a *BluetoothSpeakerAPI) Play(data string) error {
	_, err := fmt.Fprintf(a.out, "[BluetoothSpeakerAPI] Playing data: %s\n", data)
	return err
}

// WiredSpeakerAPI simulates a wired speaker SDK.
type WiredSpeakerAPI struct {
	out io.Writer
}

func (a *WiredSpeakerAPI) Initialize() error {
	slog.Debug("initializing wired speaker")
	return nil
}

func (a *WiredSpeakerAPI) Play(data string) error {
	_, err := fmt.Fprintf(a.out, "[WiredSpeakerAPI] Playing data: %s\n", data)
	return err
}

// HeadphonesAPI simulates a headphones SDK.
type HeadphonesAPI struct {
	out io.Writer
}

func (a *HeadphonesAPI) Initialize() error {
	slog.Debug("initializing headphones")
	return nil
}

func (a *HeadphonesAPI) Play(data string) error {
	_, err := fmt.Fprintf(a.out, "[HeadphonesAPI] Playing data: %s\n", data)
	return err
}

// BluetoothAdapter adapts BluetoothSpeakerAPI to the OutputDevice interface.
type BluetoothAdapter struct {
	api *BluetoothSpeakerAPI
}

// NewBluetoothAdapter initializes the bluetooth speaker and returns an
// adapter bound to it. Lines are emitted on out.
func NewBluetoothAdapter(out io.Writer) (*BluetoothAdapter, error) {
	api := &BluetoothSpeakerAPI{out: out}
	if err := api.Initialize(); err != nil {
		return nil, fmt.Errorf("bluetooth init: %w", err)
	}
	return &BluetoothAdapter{api: api}, nil
}

func (d *BluetoothAdapter) PlaySound(track playlist.Track) error {
	data := fmt.Sprintf("Bluetooth play: %s by %s", track.Title, track.Artist)
	slog.Debug("rendering track", "device", Bluetooth, "title", track.Title, "artist", track.Artist)
	return d.api.Play(data)
}

// WiredAdapter adapts WiredSpeakerAPI to the OutputDevice interface.
type WiredAdapter struct {
	api *WiredSpeakerAPI
}

// NewWiredAdapter initializes the wired speaker and returns an adapter
// bound to it.
func NewWiredAdapter(out io.Writer) (*WiredAdapter, error) {
	api := &WiredSpeakerAPI{out: out}
	if err := api.Initialize(); err != nil {
		return nil, fmt.Errorf("wired init: %w", err)
	}
	return &WiredAdapter{api: api}, nil
}

func (d *WiredAdapter) PlaySound(track playlist.Track) error {
	data := fmt.Sprintf("Wired play: %s by %s", track.Title, track.Artist)
	slog.Debug("rendering track", "device", Wired, "title", track.Title, "artist", track.Artist)
	return d.api.Play(data)
}

// HeadphonesAdapter adapts HeadphonesAPI to the OutputDevice interface.
type HeadphonesAdapter struct {
	api *HeadphonesAPI
}

// NewHeadphonesAdapter initializes the headphones and returns an adapter
// bound to them.
func NewHeadphonesAdapter(out io.Writer) (*HeadphonesAdapter, error) {
	api := &HeadphonesAPI{out: out}
	if err := api.Initialize(); err != nil {
		return nil, fmt.Errorf("headphones init: %w", err)
	}
	return &HeadphonesAdapter{api: api}, nil
}

func (d *HeadphonesAdapter) PlaySound(track playlist.Track) error {
	data := fmt.Sprintf("Headphones play: %s by %s", track.Title, track.Artist)
	slog.Debug("rendering track", "device", Headphones, "title", track.Title, "artist", track.Artist)
	return d.api.Play(data)
}
