package device

import (
	"errors"
	"fmt"

	"tunedeck.click/internal/playlist"
)

// Type identifies one of the supported output devices. The set is closed:
// there is no dynamic device discovery.
type Type string

const (
	Bluetooth  Type = "bluetooth"
	Wired      Type = "wired"
	Headphones Type = "headphones"
)

// Common errors for the device subsystem
var (
	ErrInvalidDeviceType    = errors.New("invalid device type")
	ErrDeviceCreationFailed = errors.New("device creation failed")
)

// OutputDevice renders a track through a specific physical channel.
// Implementations are stateless per play: every PlaySound call is
// independent and must not fail under normal operation. Device bring-up
// happens at construction time, never at play time.
type OutputDevice interface {
	PlaySound(track playlist.Track) error
}

// ParseType converts a string to a device Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Bluetooth, Wired, Headphones:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidDeviceType, s)
	}
}

// String returns the configuration name of the device type.
func (t Type) String() string {
	return string(t)
}
