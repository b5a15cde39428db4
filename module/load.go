package module

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/drake/segbar/style"
	"github.com/drake/segbar/text"
)

// Load renders the one-minute load average.
type Load struct {
	FS     fs.FS   // Rooted at /proc
	High   float64 // Load at or above which LoadHigh is used
	styles style.Styles
}

// NewLoad creates a load module reading /proc/loadavg.
// High defaults to the number of CPUs.
func NewLoad(styles style.Styles) *Load {
	return &Load{
		FS:     os.DirFS("/proc"),
		High:   float64(runtime.NumCPU()),
		styles: styles,
	}
}

// Render implements Module.
func (l *Load) Render(left, right text.Colored) (Result, error) {
	raw, err := fs.ReadFile(l.FS, "loadavg")
	if err != nil {
		return Result{}, err
	}

	fields := strings.Fields(string(raw))
	if len(fields) == 0 {
		return Result{}, errors.New("loadavg: empty")
	}
	avg, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Result{}, fmt.Errorf("loadavg: %w", err)
	}

	st := l.styles.Load
	if avg >= l.High {
		st = l.styles.LoadHigh
	}
	return Wrap(left, right, text.New(fmt.Sprintf("load %.2f", avg), st)), nil
}
