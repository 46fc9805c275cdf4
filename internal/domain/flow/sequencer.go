package flow

import (
	"context"
	"sync"
	"time"
)

const (
	defaultHopInterval = 220 * time.Millisecond
	defaultCommitDelay = 80 * time.Millisecond
)

// Frame is one observed tick of a step transition. AnimatedStep slides one
// index at a time toward the target; the final frame carries Committed=true
// once the logical step may be advanced.
type Frame struct {
	AnimatedStep int
	Committed    bool
}

// Sequencer drives the sliding-panel step transition. At most one transition
// is in flight: a new Advance call supersedes the previous one by cancelling
// its timer chain, so late frames of an abandoned transition never land.

type Sequencer struct {
	mu          sync.Mutex
	hopInterval time.Duration
	commitDelay time.Duration
	cancel      context.CancelFunc
}

func NewSequencer() *Sequencer {
	return &Sequencer{hopInterval: defaultHopInterval, commitDelay: defaultCommitDelay}
}

// NewSequencerWithIntervals exists so tests can run transitions in
// microseconds instead of the presentation timings.
func NewSequencerWithIntervals(hop, commit time.Duration) *Sequencer {
	return &Sequencer{hopInterval: hop, commitDelay: commit}
}

// Direction is +1 when navigating forward and -1 backward, consumed purely
// for choosing slide geometry.
func Direction(from, to int) int {
	if to < from {
		return -1
	}
	return 1
}

// Advance starts a transition from one step to another, emitting a frame per
// intermediate index (jump navigation still visits every index in order) and
// a final committed frame. The observer runs on the sequencer goroutine.
func (s *Sequencer) Advance(from, to int, observe func(Frame)) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(ctx, from, to, observe)
}

// Stop cancels any in-flight transition without emitting further frames.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
}

func (s *Sequencer) run(ctx context.Context, from, to int, observe func(Frame)) {
	if from == to {
		observe(Frame{AnimatedStep: to, Committed: true})
		return
	}

	dir := Direction(from, to)
	for step := from + dir; ; step += dir {
		if !sleep(ctx, s.hopInterval) {
			return
		}
		observe(Frame{AnimatedStep: step})
		if step == to {
			break
		}
	}

	if !sleep(ctx, s.commitDelay) {
		return
	}
	observe(Frame{AnimatedStep: to, Committed: true})
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
