package bar

import (
	"github.com/drake/segbar/module"
	"github.com/drake/segbar/text"
)

// Segment is one region of the bar. It is one of DynSpacer, StaticSpacer or Status.
type Segment interface {
	isSegment()
}

// DynSpacer is a blank region sized at render time to fill the remaining width.
// All dynamic spacers in a bar share the leftover width evenly.
type DynSpacer struct{}

// StaticSpacer is a blank region of fixed width. Negative widths render as zero.
type StaticSpacer int

// Status is an ordered group of modules sharing one separator policy.
type Status struct {
	Modules []module.Module
	Seps    Separators
}

func (DynSpacer) isSegment() {}
func (StaticSpacer) isSegment() {}
func (Status) isSegment() {}

// Separators decides the edge decorations of each module in a Status segment.
// It is one of One, Two or Three.
type Separators interface {
	edges(i, n int) (left, right text.Colored)
}

// One puts Sep on both sides of the first module and on the right of every
// later module, so each boundary is drawn once.
type One struct {
	Sep text.Colored
}

// Two wraps every module in Before and After.
type Two struct {
	Before text.Colored
	After  text.Colored
}

// Three opens the segment with Before, closes it with After and draws Mid on
// each boundary between modules. The boundary is drawn by the right edge of the
// module before it, so interior modules have an empty left edge. A segment
// with a single module gets (Before, After).
type Three struct {
	Before text.Colored
	Mid    text.Colored
	After  text.Colored
}

func (s One) edges(i, n int) (text.Colored, text.Colored) {
	if i == 0 {
		return s.Sep, s.Sep
	}
	return text.Colored{}, s.Sep
}

func (s Two) edges(i, n int) (text.Colored, text.Colored) {
	return s.Before, s.After
}

func (s Three) edges(i, n int) (text.Colored, text.Colored) {
	var left text.Colored
	if i == 0 {
		left = s.Before
	}
	right := s.Mid
	if i == n-1 {
		right = s.After
	}
	return left, right
}

// Edges returns the left and right decorations for module i of a segment with
// n modules. Only the position inside the segment matters. A nil policy
// yields empty edges.
func Edges(seps Separators, i, n int) (left, right text.Colored) {
	if seps == nil {
		return text.Colored{}, text.Colored{}
	}
	return seps.edges(i, n)
}
