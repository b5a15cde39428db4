package bar

import (
	"github.com/drake/segbar/module"
	"github.com/drake/segbar/text"
)

// outcome is what a module goroutine hands back to the assembler.
type outcome struct {
	module.Result
	failed bool
}

// handle yields exactly one outcome.
type handle <-chan outcome

// start launches one goroutine per module of s and returns their handles in
// module order, along with the combined plain width of every resolved edge.
func (b *Bar) start(s Status) ([]handle, int) {
	n := len(s.Modules)
	handles := make([]handle, n)
	sepWidth := 0

	for i, m := range s.Modules {
		left, right := Edges(s.Seps, i, n)
		sepWidth += left.Width() + right.Width()

		ch := make(chan outcome, 1) // Buffered so a goroutine never waits on the join
		handles[i] = ch
		go b.run(m, left, right, ch)
	}

	return handles, sepWidth
}

// run renders one module. An error or panic is replaced by the bare edges
// with zero content width; it never reaches the caller of Render.
func (b *Bar) run(m module.Module, left, right text.Colored, ch chan<- outcome) {
	placeholder := outcome{
		Result: module.Result{Text: left.Decorated() + right.Decorated()},
		failed: true,
	}

	defer func() {
		if r := recover(); r != nil {
			b.logf("module %T panicked: %v", m, r)
			ch <- placeholder
		}
	}()

	res, err := m.Render(left, right)
	if err != nil {
		b.logf("module %T: %v", m, err)
		ch <- placeholder
		return
	}
	if res.Width < 0 {
		res.Width = 0
	}
	ch <- outcome{Result: res}
}
