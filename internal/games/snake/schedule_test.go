package snake

import (
	"testing"
	"time"
)

func TestSchedulerFiresInTimeOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.Schedule(30*time.Millisecond, func() { order = append(order, "c") })
	s.Schedule(10*time.Millisecond, func() { order = append(order, "a") })
	s.Schedule(10*time.Millisecond, func() { order = append(order, "b") })

	if n := s.Advance(5 * time.Millisecond); n != 0 {
		t.Errorf("Advance(5ms) fired %d events, expected 0", n)
	}
	if n := s.Advance(10 * time.Millisecond); n != 2 {
		t.Errorf("Advance(10ms) fired %d events, expected 2", n)
	}
	if n := s.Advance(time.Second); n != 1 {
		t.Errorf("Advance(1s) fired %d events, expected 1", n)
	}

	want := "abc"
	got := ""
	for _, s := range order {
		got += s
	}
	if got != want {
		t.Errorf("Fire order = %q, expected %q", got, want)
	}
}

func TestSchedulerDelayIsRelativeToClock(t *testing.T) {
	s := NewScheduler()
	s.Advance(100 * time.Millisecond)

	fired := false
	s.Schedule(50*time.Millisecond, func() { fired = true })

	s.Advance(120 * time.Millisecond)
	if fired {
		t.Error("Event fired before its delay elapsed")
	}
	s.Advance(150 * time.Millisecond)
	if !fired {
		t.Error("Event did not fire once due")
	}
}

func TestSchedulerClockNeverGoesBack(t *testing.T) {
	s := NewScheduler()
	s.Advance(time.Second)
	s.Advance(time.Millisecond)
	if s.Now() != time.Second {
		t.Errorf("Now() = %v, expected 1s", s.Now())
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	fired := 0
	for i := 0; i < 5; i++ {
		s.Schedule(time.Duration(i)*time.Millisecond, func() { fired++ })
	}
	if s.Pending() != 5 {
		t.Fatalf("Pending() = %d, expected 5", s.Pending())
	}

	s.CancelAll()
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after CancelAll, expected 0", s.Pending())
	}
	s.Advance(time.Second)
	if fired != 0 {
		t.Errorf("%d cancelled events fired", fired)
	}
}

func TestSchedulerChainedEvent(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Schedule(0, func() {
		fired++
		s.Schedule(0, func() { fired++ })
	})

	if n := s.Advance(0); n != 2 {
		t.Errorf("Advance(0) fired %d events, expected 2", n)
	}
	if fired != 2 {
		t.Errorf("fired = %d, expected 2", fired)
	}
}
