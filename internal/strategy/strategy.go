package strategy

import (
	"errors"
	"fmt"

	"tunedeck.click/internal/playlist"
)

// Type identifies one of the supported traversal policies. The set is
// closed.
type Type string

const (
	Sequential  Type = "sequential"
	Random      Type = "random"
	CustomQueue Type = "custom_queue"
)

// Common errors for the strategy subsystem
var (
	ErrEmptyPlaylist        = errors.New("playlist is empty")
	ErrEmptyQueue           = errors.New("custom queue is empty")
	ErrQueueIndexOutOfRange = errors.New("queue index out of range")
	ErrInvalidStrategyType  = errors.New("invalid strategy type")
)

// PlayStrategy selects which track of a playlist plays next. Strategies
// hold their own traversal cursors; the playlist itself is only read.
// A strategy never swallows a failure into a fallback track: every error
// is reported to the caller.
type PlayStrategy interface {
	// NextSong returns the next track to play from the given view and
	// advances the strategy's internal cursor.
	NextSong(view playlist.View) (playlist.Track, error)
	// Reset returns the cursor to its initial state. Externally supplied
	// configuration (such as a custom queue) is left untouched.
	Reset()
}

// ParseType converts a string to a strategy Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Sequential, Random, CustomQueue:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidStrategyType, s)
	}
}

// String returns the configuration name of the strategy type.
func (t Type) String() string {
	return string(t)
}
