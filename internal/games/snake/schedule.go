package snake

import (
	"sort"
	"time"
)

// event is a one-shot callback due at a point on the game clock.
type event struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// Scheduler holds pending one-shot events on the game clock. It is driven by
// the controller and is not safe for concurrent use.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending []event
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule registers fn to run once delay after the current clock.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.pending = append(s.pending, event{at: s.now + delay, seq: s.seq, fn: fn})
}

// Advance moves the clock to now and runs every due event in time order.
// Events scheduled by a running callback fire in the same call if already due.
func (s *Scheduler) Advance(now time.Duration) int {
	if now > s.now {
		s.now = now
	}

	fired := 0
	for {
		due := s.popDue()
		if due == nil {
			return fired
		}
		due.fn()
		fired++
	}
}

func (s *Scheduler) popDue() *event {
	if len(s.pending) == 0 {
		return nil
	}
	sort.Slice(s.pending, func(i, j int) bool {
		if s.pending[i].at != s.pending[j].at {
			return s.pending[i].at < s.pending[j].at
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	if s.pending[0].at > s.now {
		return nil
	}
	e := s.pending[0]
	s.pending = s.pending[1:]
	return &e
}

// CancelAll drops every pending event.
func (s *Scheduler) CancelAll() {
	s.pending = nil
}

// Pending returns the number of events not yet fired.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}
