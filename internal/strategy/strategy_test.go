package strategy

import (
	"errors"
	"math/rand"
	"testing"

	"tunedeck.click/internal/playlist"
)

func testPlaylist(titles ...string) *playlist.Playlist {
	p := playlist.New()
	for _, title := range titles {
		p.Add(playlist.Track{Title: title})
	}
	return p
}

func TestSequential_PlaylistOrder(t *testing.T) {
	p := testPlaylist("a", "b", "c", "d")
	s := NewSequentialStrategy()

	for i, want := range []string{"a", "b", "c", "d"} {
		track, err := s.NextSong(p)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
		if track.Title != want {
			t.Errorf("call %d: got %q, want %q", i+1, track.Title, want)
		}
	}
}

func TestSequential_Cyclic(t *testing.T) {
	p := testPlaylist("a", "b", "c")
	s := NewSequentialStrategy()

	// Call N+k must return the same track as call k
	var first []string
	for i := 0; i < 3; i++ {
		track, err := s.NextSong(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first = append(first, track.Title)
	}
	for i := 0; i < 3; i++ {
		track, err := s.NextSong(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if track.Title != first[i] {
			t.Errorf("call %d: got %q, want %q", i+4, track.Title, first[i])
		}
	}
}

func TestSequential_Reset(t *testing.T) {
	p := testPlaylist("a", "b", "c")
	s := NewSequentialStrategy()

	if _, err := s.NextSong(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.NextSong(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Reset()

	track, err := s.NextSong(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.Title != "a" {
		t.Errorf("after reset got %q, want a", track.Title)
	}
}

func TestSequential_EmptyPlaylist(t *testing.T) {
	s := NewSequentialStrategy()

	_, err := s.NextSong(playlist.New())
	if !errors.Is(err, ErrEmptyPlaylist) {
		t.Errorf("expected ErrEmptyPlaylist, got %v", err)
	}
}

func TestRandom_ReturnsPlaylistMember(t *testing.T) {
	p := testPlaylist("a", "b", "c", "d")
	s := NewRandomStrategy(rand.New(rand.NewSource(42)))

	members := map[string]bool{"a": true, "b": true, "c": true, "d": true}
	for i := 0; i < 100; i++ {
		track, err := s.NextSong(p)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
		if !members[track.Title] {
			t.Fatalf("call %d: %q is not a playlist member", i+1, track.Title)
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	p := testPlaylist("a", "b", "c", "d")

	// Two strategies over identical seeds draw identical sequences
	s1 := NewRandomStrategy(rand.New(rand.NewSource(7)))
	s2 := NewRandomStrategy(rand.New(rand.NewSource(7)))

	for i := 0; i < 20; i++ {
		t1, err1 := s1.NextSong(p)
		t2, err2 := s2.NextSong(p)
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected error: %v %v", err1, err2)
		}
		if t1 != t2 {
			t.Fatalf("call %d: sequences diverged: %q vs %q", i+1, t1.Title, t2.Title)
		}
	}
}

func TestRandom_EmptyPlaylist(t *testing.T) {
	s := NewRandomStrategy(rand.New(rand.NewSource(1)))

	_, err := s.NextSong(playlist.New())
	if !errors.Is(err, ErrEmptyPlaylist) {
		t.Errorf("expected ErrEmptyPlaylist, got %v", err)
	}
}

func TestRandom_ResetIsNoop(t *testing.T) {
	p := testPlaylist("a")
	s := NewRandomStrategy(rand.New(rand.NewSource(1)))

	s.Reset()

	track, err := s.NextSong(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.Title != "a" {
		t.Errorf("got %q, want a", track.Title)
	}
}

func TestCustomQueue_Order(t *testing.T) {
	p := testPlaylist("a", "b", "c", "d")
	s := NewCustomQueueStrategy()
	s.SetQueue([]int{1, 0, 3, 2})

	// Cyclic: the queue order repeats after 4 calls
	want := []string{"b", "a", "d", "c", "b", "a", "d", "c"}
	for i, title := range want {
		track, err := s.NextSong(p)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
		if track.Title != title {
			t.Errorf("call %d: got %q, want %q", i+1, track.Title, title)
		}
	}
}

func TestCustomQueue_NoQueueAssigned(t *testing.T) {
	p := testPlaylist("a", "b")
	s := NewCustomQueueStrategy()

	_, err := s.NextSong(p)
	if !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("expected ErrEmptyQueue before SetQueue, got %v", err)
	}
}

func TestCustomQueue_EmptyQueueAssigned(t *testing.T) {
	p := testPlaylist("a", "b")
	s := NewCustomQueueStrategy()
	s.SetQueue([]int{})

	_, err := s.NextSong(p)
	if !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("expected ErrEmptyQueue, got %v", err)
	}
}

func TestCustomQueue_EmptyPlaylist(t *testing.T) {
	s := NewCustomQueueStrategy()
	s.SetQueue([]int{0})

	_, err := s.NextSong(playlist.New())
	if !errors.Is(err, ErrEmptyPlaylist) {
		t.Errorf("expected ErrEmptyPlaylist, got %v", err)
	}
}

func TestCustomQueue_IndexOutOfRange_Lazy(t *testing.T) {
	p := testPlaylist("a", "b", "c")
	s := NewCustomQueueStrategy()

	// Entry 5 is out of range but must only fail at the call that
	// reaches it, not at assignment
	s.SetQueue([]int{0, 5, 1})

	track, err := s.NextSong(p)
	if err != nil {
		t.Fatalf("call 1: unexpected error: %v", err)
	}
	if track.Title != "a" {
		t.Errorf("call 1: got %q, want a", track.Title)
	}

	_, err = s.NextSong(p)
	if !errors.Is(err, ErrQueueIndexOutOfRange) {
		t.Errorf("call 2: expected ErrQueueIndexOutOfRange, got %v", err)
	}
}

func TestCustomQueue_IndexOutOfRange_AfterShrink(t *testing.T) {
	p := testPlaylist("a", "b", "c")
	s := NewCustomQueueStrategy()
	s.SetQueue([]int{2})

	if _, err := s.NextSong(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bounds are checked per access: the queue was valid when set, but
	// the playlist shrank afterwards
	p.Remove(2)

	_, err := s.NextSong(p)
	if !errors.Is(err, ErrQueueIndexOutOfRange) {
		t.Errorf("expected ErrQueueIndexOutOfRange, got %v", err)
	}
}

func TestCustomQueue_Reset_KeepsQueue(t *testing.T) {
	p := testPlaylist("a", "b", "c", "d")
	s := NewCustomQueueStrategy()
	s.SetQueue([]int{1, 0})

	if _, err := s.NextSong(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Reset()

	track, err := s.NextSong(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.Title != "b" {
		t.Errorf("after reset got %q, want b (queue must survive reset)", track.Title)
	}
}

func TestCustomQueue_SetQueue_Copies(t *testing.T) {
	p := testPlaylist("a", "b")
	s := NewCustomQueueStrategy()

	queue := []int{0}
	s.SetQueue(queue)
	queue[0] = 1

	track, err := s.NextSong(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.Title != "a" {
		t.Error("mutating the caller's slice must not affect the assigned queue")
	}
}

func TestCustomQueue_CursorDoesNotAdvanceOnError(t *testing.T) {
	p := testPlaylist("a")
	s := NewCustomQueueStrategy()
	s.SetQueue([]int{3, 0})

	if _, err := s.NextSong(p); !errors.Is(err, ErrQueueIndexOutOfRange) {
		t.Fatalf("expected ErrQueueIndexOutOfRange, got %v", err)
	}

	// Still stuck on the bad entry
	if _, err := s.NextSong(p); !errors.Is(err, ErrQueueIndexOutOfRange) {
		t.Errorf("expected ErrQueueIndexOutOfRange again, got %v", err)
	}
}
