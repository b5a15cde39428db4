package module

import (
	"testing"
	"testing/fstest"

	"github.com/drake/segbar/text"
)

func TestLoad(t *testing.T) {
	l := NewLoad(testStyles)
	l.FS = fstest.MapFS{
		"loadavg": {Data: []byte("0.42 0.30 0.25 1/512 12345\n")},
	}

	res, err := l.Render(text.Plain("["), text.Colored{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != "[load 0.42" || res.Width != 9 {
		t.Errorf("got %+v", res)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]fstest.MapFS{
		"missing": {},
		"empty":   {"loadavg": {Data: []byte("\n")}},
		"garbage": {"loadavg": {Data: []byte("high 1 1\n")}},
	}
	for name, fsys := range tests {
		l := NewLoad(testStyles)
		l.FS = fsys
		if _, err := l.Render(text.Colored{}, text.Colored{}); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
