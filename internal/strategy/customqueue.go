package strategy

import (
	"fmt"
	"log/slog"

	"tunedeck.click/internal/playlist"
)

// CustomQueueStrategy plays tracks in an externally supplied order: an
// ordered sequence of playlist indices set once via SetQueue, traversed
// cyclically. Queue assignment is a typed, strategy-specific step - it is
// deliberately not reachable through the generic PlayStrategy interface.
type CustomQueueStrategy struct {
	queue []int
	pos   int
}

// NewCustomQueueStrategy creates a custom queue strategy with no queue
// assigned. NextSong fails with ErrEmptyQueue until SetQueue is called.
func NewCustomQueueStrategy() *CustomQueueStrategy {
	return &CustomQueueStrategy{}
}

// SetQueue replaces the queue with a copy of the given playlist indices
// and rewinds the cursor. Entries are not bounds-checked here: the
// playlist can shrink after assignment, so every entry is validated
// lazily at the call that reaches it.
func (s *CustomQueueStrategy) SetQueue(queue []int) {
	slog.Debug("assigning custom queue", "length", len(queue))
	s.queue = append([]int(nil), queue...)
	s.pos = 0
}

// NextSong returns the track at the queue entry under the cursor and
// advances the cursor cyclically. The cursor does not advance on error.
func (s *CustomQueueStrategy) NextSong(view playlist.View) (playlist.Track, error) {
	if view.Len() == 0 {
		return playlist.Track{}, ErrEmptyPlaylist
	}
	if len(s.queue) == 0 {
		return playlist.Track{}, ErrEmptyQueue
	}

	idx := s.queue[s.pos%len(s.queue)]
	track, ok := view.Track(idx)
	if !ok {
		return playlist.Track{}, fmt.Errorf("%w: queue entry %d, playlist size %d", ErrQueueIndexOutOfRange, idx, view.Len())
	}

	s.pos = (s.pos + 1) % len(s.queue)
	return track, nil
}

// Reset rewinds the cursor to the start of the queue. The queue itself is
// left untouched.
func (s *CustomQueueStrategy) Reset() {
	s.pos = 0
}
