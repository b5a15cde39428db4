// Package timer schedules periodic bar renders.
package timer

import (
	"sync"
	"time"
)

// Tick is sent when a schedule fires.
type Tick struct {
	ID   int
	Seq  int  // 1-based count of fires for this schedule
	Last bool // No further ticks will follow for this ID
	At   time.Time
}

// Service owns render schedules: ID generation, rescheduling, fire limits and
// cancellation. Repeating schedules use fixed-interval semantics and reschedule
// as soon as they fire.
type Service struct {
	ticks  chan<- Tick
	timers map[int]*entry
	nextID int
	mu     sync.Mutex
}

type entry struct {
	interval time.Duration // 0 = one-shot
	limit    int           // 0 = unbounded
	fired    int
	stop     func() bool // time.Timer.Stop
}

// NewService creates a timer service that delivers ticks on the given channel.
func NewService(ticks chan<- Tick) *Service {
	return &Service{
		ticks:  ticks,
		timers: make(map[int]*entry),
	}
}

// After schedules a single tick. Returns the schedule ID.
func (s *Service) After(d time.Duration) int {
	return s.schedule(d, 0, 1)
}

// Every schedules a tick every d, stopping after limit ticks (0 = never).
// Returns the schedule ID.
func (s *Service) Every(d time.Duration, limit int) int {
	return s.schedule(d, d, limit)
}

func (s *Service) schedule(d, interval time.Duration, limit int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID

	t := time.AfterFunc(d, func() {
		s.fire(id)
	})

	s.timers[id] = &entry{
		interval: interval,
		limit:    limit,
		stop:     t.Stop,
	}

	return id
}

// fire delivers a tick and reschedules unless the schedule is done.
func (s *Service) fire(id int) {
	s.mu.Lock()
	e, ok := s.timers[id]
	if !ok {
		s.mu.Unlock()
		return // Cancelled before firing
	}

	e.fired++
	last := e.interval == 0 || (e.limit > 0 && e.fired >= e.limit)

	if last {
		delete(s.timers, id)
	} else {
		t := time.AfterFunc(e.interval, func() {
			s.fire(id)
		})
		e.stop = t.Stop
	}
	tick := Tick{ID: id, Seq: e.fired, Last: last, At: time.Now()}
	s.mu.Unlock()

	if last {
		s.ticks <- tick
		return
	}
	select {
	case s.ticks <- tick:
	default:
		// Receiver still busy with the previous tick
	}
}

// Cancel stops a schedule and removes it.
func (s *Service) Cancel(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.timers[id]; ok {
		e.stop()
		delete(s.timers, id)
	}
}

// CancelAll stops every schedule.
func (s *Service) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.timers {
		e.stop()
	}
	s.timers = make(map[int]*entry)
}

// Active returns the number of live schedules.
func (s *Service) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
