// Package module defines the content providers a bar is built from.
package module

import "github.com/drake/segbar/text"

// Result is one module's rendered output.
// Width is the display width of the module's own content; the edges passed to
// Render are accounted for by the bar, not by the module.
type Result struct {
	Text  string
	Width int
}

// Module produces a piece of bar content wrapped in the given edge decorations.
// Render is called from its own goroutine, once per bar render.
type Module interface {
	Render(left, right text.Colored) (Result, error)
}

// Wrap places content between the edges and reports the content width.
func Wrap(left, right, content text.Colored) Result {
	return Result{
		Text:  left.Decorated() + content.Decorated() + right.Decorated(),
		Width: content.Width(),
	}
}

// Static is a module that always renders the same text.
type Static struct {
	Text text.Colored
}

// Render implements Module.
func (s Static) Render(left, right text.Colored) (Result, error) {
	return Wrap(left, right, s.Text), nil
}

// Func adapts a plain function to the Module interface.
type Func func() (text.Colored, error)

// Render implements Module.
func (f Func) Render(left, right text.Colored) (Result, error) {
	content, err := f()
	if err != nil {
		return Result{}, err
	}
	return Wrap(left, right, content), nil
}
