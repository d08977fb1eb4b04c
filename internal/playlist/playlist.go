package playlist

// Track represents a single playable item. It is a plain value: two tracks
// with the same title and artist are interchangeable, and duplicates are
// allowed in a playlist.
type Track struct {
	Title  string
	Artist string
}

// View is a read-only, non-owning view of a playlist. The playback engine
// and the play strategies operate on a View so they can never mutate the
// session's playlist.
type View interface {
	// Len returns the number of tracks.
	Len() int
	// Track returns the track at the given index. The second return value
	// is false if the index is out of range.
	Track(index int) (Track, bool)
}

// Playlist holds an ordered collection of tracks. Insertion order is the
// traversal order for index-based strategies. Playlist is not safe for
// concurrent use; the session controller owns it and serializes access.
type Playlist struct {
	tracks []Track
}

// New creates a new empty playlist.
func New() *Playlist {
	return &Playlist{
		tracks: make([]Track, 0),
	}
}

// Add appends a track to the playlist. It never fails.
func (p *Playlist) Add(track Track) {
	p.tracks = append(p.tracks, track)
}

// Remove removes the track at the given index and compacts the remaining
// indices. An out-of-range index (including negative) is a silent no-op,
// not an error. Callers are not required to bounds-check first.
func (p *Playlist) Remove(index int) {
	if index < 0 || index >= len(p.tracks) {
		return
	}
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)
}

// Track returns the track at the given index.
func (p *Playlist) Track(index int) (Track, bool) {
	if index < 0 || index >= len(p.tracks) {
		return Track{}, false
	}
	return p.tracks[index], true
}

// Tracks returns a copy of all tracks in order.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}
