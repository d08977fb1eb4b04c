package strategy

import (
	"math/rand"

	"tunedeck.click/internal/playlist"
)

// RandomStrategy draws a uniformly distributed track on every call. It
// holds no traversal cursor. The generator is injected so tests can
// substitute a deterministic source; shuffle quality does not need to be
// cryptographically strong or reproducible across runs.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy creates a random strategy using the given generator.
func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

// NextSong returns a uniformly chosen track from the view.
func (s *RandomStrategy) NextSong(view playlist.View) (playlist.Track, error) {
	size := view.Len()
	if size == 0 {
		return playlist.Track{}, ErrEmptyPlaylist
	}

	track, _ := view.Track(s.rng.Intn(size))
	return track, nil
}

// Reset is a no-op: the strategy is stateless between calls.
func (s *RandomStrategy) Reset() {}
