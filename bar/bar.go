// Package bar composes a fixed-width status line from segments of
// concurrently rendered modules.
package bar

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Sides records whether the outermost segments want separators on the bar's
// edges. It is kept with the bar but does not affect separator choice, which
// depends only on a module's position inside its own segment.
type Sides struct {
	Left  bool
	Right bool
}

// Stats describes one render pass.
type Stats struct {
	Width   int // Requested width
	Fixed   int // Static spacers, edges and module content
	Dynamic int // Number of dynamic spacers
	Spacer  int // Width given to each dynamic spacer
	Modules int
	Failed  int // Modules replaced by a placeholder
	Elapsed time.Duration
}

// Option configures a Bar.
type Option func(*Bar)

// WithOutput sets where Render writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(b *Bar) { b.out = w }
}

// WithLogger reports module failures to l.
func WithLogger(l *log.Logger) Option {
	return func(b *Bar) { b.logger = l }
}

// WithObserver calls fn with the Stats of every render.
func WithObserver(fn func(Stats)) Option {
	return func(b *Bar) { b.observe = fn }
}

// Bar is an ordered list of segments rendered into one line.
// Segments are appended with Add and never removed; each render is independent
// of the previous ones.
type Bar struct {
	segments []Segment
	sides    Sides

	out     io.Writer
	logger  *log.Logger
	observe func(Stats)
}

// New creates an empty bar.
func New(sides Sides, opts ...Option) *Bar {
	b := &Bar{
		sides: sides,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends a segment and returns the same bar for chaining.
func (b *Bar) Add(seg Segment) *Bar {
	b.segments = append(b.segments, seg)
	return b
}

// Sides returns the edge configuration the bar was created with.
func (b *Bar) Sides() Sides { return b.sides }

// Render writes one line of the given width, followed by a newline.
func (b *Bar) Render(width int) {
	fmt.Fprintln(b.out, b.Line(width))
}

// unit is a piece of the line during assembly.
type unit interface {
	isUnit()
}

type (
	dynamic  struct{} // Spacer whose width is not known yet
	finished string   // Literal text
	pending  []handle // Module goroutines of one Status segment, in module order
)

func (dynamic) isUnit() {}
func (finished) isUnit() {}
func (pending) isUnit() {}

// Line renders the bar and returns it without a trailing newline.
//
// Every module goroutine is started before any is joined. Joins then happen in
// segment order and, inside a segment, module order, so the output order is the
// declaration order no matter which module finishes first.
//
// If there are no dynamic spacers the line is just its fixed content and may be
// shorter or longer than width. If the fixed content is wider than width the
// dynamic spacers collapse to nothing; the line is not truncated.
func (b *Bar) Line(width int) string {
	began := time.Now()
	stats := Stats{Width: width}

	// Dispatch
	units := make([]unit, 0, len(b.segments))
	for _, seg := range b.segments {
		switch s := seg.(type) {
		case DynSpacer:
			units = append(units, dynamic{})
		case StaticSpacer:
			n := max(int(s), 0)
			units = append(units, finished(strings.Repeat(" ", n)))
			stats.Fixed += n
		case Status:
			handles, sepWidth := b.start(s)
			units = append(units, pending(handles))
			stats.Fixed += sepWidth
			stats.Modules += len(handles)
		}
	}

	// Resolve
	resolved := make([]unit, 0, len(units)+stats.Modules)
	for _, u := range units {
		switch u := u.(type) {
		case pending:
			for _, h := range u {
				out := <-h
				if out.failed {
					stats.Failed++
				}
				stats.Fixed += out.Width
				resolved = append(resolved, finished(out.Text))
			}
		case dynamic:
			stats.Dynamic++
			resolved = append(resolved, u)
		default:
			resolved = append(resolved, u)
		}
	}

	// Render
	stats.Spacer = spacerWidth(width, stats.Fixed, stats.Dynamic)
	spacer := strings.Repeat(" ", stats.Spacer)

	var sb strings.Builder
	for _, u := range resolved {
		switch u := u.(type) {
		case finished:
			sb.WriteString(string(u))
		case dynamic:
			sb.WriteString(spacer)
		}
	}

	stats.Elapsed = time.Since(began)
	if b.observe != nil {
		b.observe(stats)
	}

	return sb.String()
}

// spacerWidth splits the width left over after fixed content evenly across
// dyn spacers, rounding down. The remainder is not handed out.
func spacerWidth(width, fixed, dyn int) int {
	if dyn == 0 {
		return 0
	}
	free := width - fixed
	if free <= 0 {
		return 0
	}
	return free / dyn
}

func (b *Bar) logf(format string, args ...any) {
	if b.logger == nil {
		return
	}
	b.logger.Printf(format, args...)
}
