package module

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/drake/segbar/style"
	"github.com/drake/segbar/text"
)

// PowerSupplyDir is where the kernel exposes battery state.
const PowerSupplyDir = "/sys/class/power_supply"

// ErrNoBattery is returned when no battery is present.
var ErrNoBattery = errors.New("no battery found")

// Battery renders the charge level of the first battery.
type Battery struct {
	FS     fs.FS // Rooted at PowerSupplyDir
	Low    int   // Percentage at or below which BatteryLow is used
	styles style.Styles
}

// NewBattery creates a battery module reading from the live sysfs tree.
func NewBattery(styles style.Styles) *Battery {
	return &Battery{
		FS:     os.DirFS(PowerSupplyDir),
		Low:    15,
		styles: styles,
	}
}

// Render implements Module.
func (b *Battery) Render(left, right text.Colored) (Result, error) {
	capacity, status, err := b.read()
	if err != nil {
		return Result{}, err
	}

	st := b.styles.Battery
	label := "BAT"
	switch {
	case status == "Charging":
		st = b.styles.Charging
		label = "CHR"
	case capacity <= b.Low:
		st = b.styles.BatteryLow
	}

	content := text.New(fmt.Sprintf("%s %d%%", label, capacity), st)
	return Wrap(left, right, content), nil
}

// read returns the capacity and status of the first BAT* entry.
func (b *Battery) read() (int, string, error) {
	matches, err := fs.Glob(b.FS, "BAT*")
	if err != nil {
		return 0, "", err
	}
	if len(matches) == 0 {
		return 0, "", ErrNoBattery
	}
	dir := matches[0]

	raw, err := fs.ReadFile(b.FS, dir+"/capacity")
	if err != nil {
		return 0, "", fmt.Errorf("battery %s: %w", dir, err)
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, "", fmt.Errorf("battery %s: bad capacity: %w", dir, err)
	}

	// Status is optional on some firmware
	status := "Unknown"
	if raw, err := fs.ReadFile(b.FS, dir+"/status"); err == nil {
		status = strings.TrimSpace(string(raw))
	}

	return capacity, status, nil
}
