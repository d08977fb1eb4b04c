package strategy

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// Factory creates PlayStrategy instances based on the requested type.
//
// CreateCustomQueue is the typed construction path for the one strategy
// that needs configuration beyond its type: it returns a concrete
// *CustomQueueStrategy so the caller can assign the queue without any
// type assertion on the generic interface.
type Factory interface {
	CreateStrategy(strategyType Type) (PlayStrategy, error)
	CreateCustomQueue() *CustomQueueStrategy
	GetSupportedStrategies() []Type
	IsValidStrategyType(strategyType Type) bool
}

// DefaultFactory implements Factory.
type DefaultFactory struct {
	newRand func() *rand.Rand
}

// NewFactory creates a new DefaultFactory whose random strategies are
// seeded from the current time.
func NewFactory() *DefaultFactory {
	return &DefaultFactory{
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// NewFactoryWithRand creates a factory with an injected generator
// constructor so tests can make random strategies deterministic.
func NewFactoryWithRand(newRand func() *rand.Rand) *DefaultFactory {
	return &DefaultFactory{newRand: newRand}
}

// CreateStrategy creates a freshly reset PlayStrategy of the specified
// type. A CustomQueue strategy created through this path has no queue
// assigned yet; NextSong fails with ErrEmptyQueue until one is supplied.
func (f *DefaultFactory) CreateStrategy(strategyType Type) (PlayStrategy, error) {
	slog.Debug("creating play strategy", "type", strategyType)

	switch strategyType {
	case Sequential:
		return NewSequentialStrategy(), nil
	case Random:
		return NewRandomStrategy(f.newRand()), nil
	case CustomQueue:
		return f.CreateCustomQueue(), nil
	default:
		slog.Error("invalid strategy type requested", "type", strategyType)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStrategyType, strategyType)
	}
}

// CreateCustomQueue creates a CustomQueueStrategy as its concrete type so
// the caller can call SetQueue directly.
func (f *DefaultFactory) CreateCustomQueue() *CustomQueueStrategy {
	slog.Debug("creating custom queue strategy")
	return NewCustomQueueStrategy()
}

// GetSupportedStrategies returns all supported strategy types.
func (f *DefaultFactory) GetSupportedStrategies() []Type {
	return []Type{Sequential, Random, CustomQueue}
}

// IsValidStrategyType checks if a strategy type is supported.
func (f *DefaultFactory) IsValidStrategyType(strategyType Type) bool {
	for _, supported := range f.GetSupportedStrategies() {
		if strategyType == supported {
			return true
		}
	}
	return false
}
