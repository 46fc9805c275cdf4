package flow

import (
	"sync"
	"testing"
	"time"
)

func collectFrames(t *testing.T, s *Sequencer, from, to int) []Frame {
	t.Helper()

	var (
		mu     sync.Mutex
		frames []Frame
	)
	done := make(chan struct{})
	s.Advance(from, to, func(f Frame) {
		mu.Lock()
		frames = append(frames, f)
		mu.Unlock()
		if f.Committed {
			close(done)
		}
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("transition %d->%d did not commit", from, to)
	}

	mu.Lock()
	defer mu.Unlock()
	return append([]Frame(nil), frames...)
}

func TestSequencer_VisitsEveryIntermediateIndex(t *testing.T) {
	s := NewSequencerWithIntervals(time.Millisecond, time.Millisecond)

	frames := collectFrames(t, s, 2, 6)

	var visited []int
	for _, f := range frames {
		if !f.Committed {
			visited = append(visited, f.AnimatedStep)
		}
	}
	want := []int{3, 4, 5, 6}
	if len(visited) != len(want) {
		t.Fatalf("expected hops %v, got %v", want, visited)
	}
	for i, step := range want {
		if visited[i] != step {
			t.Fatalf("expected hops %v, got %v", want, visited)
		}
	}

	last := frames[len(frames)-1]
	if !last.Committed || last.AnimatedStep != 6 {
		t.Fatalf("expected committed frame at 6, got %+v", last)
	}
}

func TestSequencer_BackwardTransition(t *testing.T) {
	s := NewSequencerWithIntervals(time.Millisecond, time.Millisecond)

	frames := collectFrames(t, s, 5, 3)
	var visited []int
	for _, f := range frames {
		if !f.Committed {
			visited = append(visited, f.AnimatedStep)
		}
	}
	if len(visited) != 2 || visited[0] != 4 || visited[1] != 3 {
		t.Fatalf("expected hops [4 3], got %v", visited)
	}

	if Direction(5, 3) != -1 || Direction(3, 5) != 1 || Direction(4, 4) != 1 {
		t.Fatalf("unexpected direction values")
	}
}

func TestSequencer_SameStepCommitsImmediately(t *testing.T) {
	s := NewSequencerWithIntervals(time.Millisecond, time.Millisecond)
	frames := collectFrames(t, s, 4, 4)
	if len(frames) != 1 || !frames[0].Committed || frames[0].AnimatedStep != 4 {
		t.Fatalf("expected single committed frame, got %v", frames)
	}
}

func TestSequencer_NewAdvanceSupersedesInFlight(t *testing.T) {
	// First transition is slow enough that the second one starts before any
	// of its frames fire; none of its frames may land afterwards.
	s := NewSequencerWithIntervals(40*time.Millisecond, 10*time.Millisecond)

	var (
		mu    sync.Mutex
		stale []Frame
	)
	s.Advance(0, 8, func(f Frame) {
		mu.Lock()
		stale = append(stale, f)
		mu.Unlock()
	})

	done := make(chan struct{})
	s.Advance(0, 2, func(f Frame) {
		if f.Committed {
			close(done)
		}
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("superseding transition did not commit")
	}

	// Give the cancelled chain a chance to misfire if cancellation is broken.
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, f := range stale {
		if f.Committed {
			t.Fatalf("superseded transition committed: %+v", stale)
		}
	}
}

func TestSequencer_StopSilencesTransition(t *testing.T) {
	s := NewSequencerWithIntervals(30*time.Millisecond, 10*time.Millisecond)

	var (
		mu     sync.Mutex
		frames []Frame
	)
	s.Advance(0, 3, func(f Frame) {
		mu.Lock()
		frames = append(frames, f)
		mu.Unlock()
	})
	s.Stop()

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(frames) != 0 {
		t.Fatalf("expected no frames after Stop, got %v", frames)
	}
}
