package strategy

import (
	"tunedeck.click/internal/playlist"
)

// SequentialStrategy plays tracks in playlist order and wraps around at
// the end, so traversal is cyclic: call N+k returns the same track as
// call k for a playlist of size N.
type SequentialStrategy struct {
	index int
}

// NewSequentialStrategy creates a sequential strategy with its cursor at
// the start of the playlist.
func NewSequentialStrategy() *SequentialStrategy {
	return &SequentialStrategy{}
}

// NextSong returns the track at the current cursor and advances it,
// wrapping modulo the playlist size.
func (s *SequentialStrategy) NextSong(view playlist.View) (playlist.Track, error) {
	size := view.Len()
	if size == 0 {
		return playlist.Track{}, ErrEmptyPlaylist
	}

	// The cursor is clamped modulo size on every call so a playlist that
	// shrank since the last call wraps instead of going out of range.
	track, _ := view.Track(s.index % size)
	s.index = (s.index + 1) % size
	return track, nil
}

// Reset rewinds the cursor to the first track.
func (s *SequentialStrategy) Reset() {
	s.index = 0
}
