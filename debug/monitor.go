// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/drake/segbar/bar"
)

// Enabled returns true if debug mode is active (SEGBAR_DEBUG=1).
func Enabled() bool {
	return os.Getenv("SEGBAR_DEBUG") == "1"
}

// Logger returns the stderr logger used for diagnostics,
// or nil if debug mode is not enabled.
func Logger() *log.Logger {
	if !Enabled() {
		return nil
	}
	return NewLogger(os.Stderr)
}

// NewLogger creates a diagnostics logger writing to w.
func NewLogger(w io.Writer) *log.Logger {
	return log.New(w, "[DEBUG] ", log.LstdFlags)
}

// Monitor aggregates bar render statistics and logs them periodically.
type Monitor struct {
	interval time.Duration
	logger   *log.Logger

	mu      sync.Mutex
	renders int
	modules int
	failed  int
	slowest time.Duration
	last    bar.Stats
}

// NewMonitor creates a monitor logging every interval.
// If debug mode is not enabled, returns nil.
func NewMonitor(interval time.Duration) *Monitor {
	if !Enabled() {
		return nil
	}
	return newMonitor(interval, NewLogger(os.Stderr))
}

func newMonitor(interval time.Duration, logger *log.Logger) *Monitor {
	return &Monitor{
		interval: interval,
		logger:   logger,
	}
}

// Observe records one render. Its signature matches bar.WithObserver.
func (m *Monitor) Observe(s bar.Stats) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.renders++
	m.modules += s.Modules
	m.failed += s.Failed
	m.slowest = max(m.slowest, s.Elapsed)
	m.last = s
}

// Start begins the monitoring loop in a goroutine. It stops when ctx is done.
func (m *Monitor) Start(ctx context.Context) {
	if m == nil {
		return
	}
	go m.run(ctx)
}

func (m *Monitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Println("Monitor started")

	for {
		select {
		case <-ctx.Done():
			m.logStats()
			m.logger.Println("Monitor stopped")
			return
		case <-ticker.C:
			m.logStats()
		}
	}
}

func (m *Monitor) logStats() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Printf("renders=%d modules=%d failed=%d slowest=%v | last: width=%d fixed=%d dyn=%d spacer=%d took=%v",
		m.renders,
		m.modules,
		m.failed,
		m.slowest.Round(time.Microsecond),
		m.last.Width,
		m.last.Fixed,
		m.last.Dynamic,
		m.last.Spacer,
		m.last.Elapsed.Round(time.Microsecond),
	)
}
