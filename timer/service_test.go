package timer

import (
	"testing"
	"time"
)

func recv(t *testing.T, ticks <-chan Tick) Tick {
	t.Helper()
	select {
	case tick := <-ticks:
		return tick
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick")
		return Tick{}
	}
}

func TestAfterFiresOnce(t *testing.T) {
	ticks := make(chan Tick, 4)
	s := NewService(ticks)

	id := s.After(5 * time.Millisecond)
	tick := recv(t, ticks)
	if tick.ID != id || tick.Seq != 1 || !tick.Last {
		t.Errorf("unexpected tick %+v", tick)
	}
	if s.Active() != 0 {
		t.Errorf("active = %d, want 0", s.Active())
	}
}

func TestEveryStopsAtLimit(t *testing.T) {
	ticks := make(chan Tick, 1)
	s := NewService(ticks)

	s.Every(2*time.Millisecond, 3)

	var got []Tick
	for {
		tick := recv(t, ticks)
		got = append(got, tick)
		if tick.Last {
			break
		}
	}

	last := got[len(got)-1]
	if last.Seq != 3 {
		t.Errorf("last tick seq = %d, want 3", last.Seq)
	}
	if s.Active() != 0 {
		t.Errorf("active = %d, want 0", s.Active())
	}
}

func TestCancel(t *testing.T) {
	ticks := make(chan Tick, 1)
	s := NewService(ticks)

	id := s.Every(time.Hour, 0)
	s.After(time.Hour)
	if s.Active() != 2 {
		t.Fatalf("active = %d, want 2", s.Active())
	}

	s.Cancel(id)
	if s.Active() != 1 {
		t.Errorf("active = %d, want 1", s.Active())
	}

	s.CancelAll()
	if s.Active() != 0 {
		t.Errorf("active = %d, want 0", s.Active())
	}
}
