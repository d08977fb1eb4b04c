package device

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Factory creates OutputDevice instances based on the requested type.
type Factory interface {
	CreateDevice(deviceType Type) (OutputDevice, error)
	GetSupportedDevices() []Type
	IsValidDeviceType(deviceType Type) bool
}

// DefaultFactory implements Factory. Each created device emits its output
// on the factory's writer (os.Stdout unless injected for testing).
type DefaultFactory struct {
	out io.Writer
}

// NewFactory creates a new DefaultFactory emitting on stdout.
func NewFactory() *DefaultFactory {
	return &DefaultFactory{out: os.Stdout}
}

// NewFactoryWithWriter creates a factory with an injected output sink for
// testing.
func NewFactoryWithWriter(out io.Writer) *DefaultFactory {
	return &DefaultFactory{out: out}
}

// CreateDevice creates an OutputDevice of the specified type. Each call
// performs the device's one-time initialization; init failure is reported
// here and never deferred to play time.
func (f *DefaultFactory) CreateDevice(deviceType Type) (OutputDevice, error) {
	slog.Debug("creating output device", "type", deviceType)

	var (
		dev OutputDevice
		err error
	)
	switch deviceType {
	case Bluetooth:
		dev, err = NewBluetoothAdapter(f.out)
	case Wired:
		dev, err = NewWiredAdapter(f.out)
	case Headphones:
		dev, err = NewHeadphonesAdapter(f.out)
	default:
		slog.Error("invalid device type requested", "type", deviceType)
		return nil, fmt.Errorf("%w: %s", ErrInvalidDeviceType, deviceType)
	}

	if err != nil {
		slog.Error("device initialization failed", "type", deviceType, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrDeviceCreationFailed, err)
	}

	slog.Debug("output device created", "type", deviceType)
	return dev, nil
}

// GetSupportedDevices returns all supported device types.
func (f *DefaultFactory) GetSupportedDevices() []Type {
	return []Type{Bluetooth, Wired, Headphones}
}

// IsValidDeviceType checks if a device type is supported.
func (f *DefaultFactory) IsValidDeviceType(deviceType Type) bool {
	for _, supported := range f.GetSupportedDevices() {
		if deviceType == supported {
			return true
		}
	}
	return false
}
