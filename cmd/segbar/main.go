package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"

	"github.com/drake/segbar/bar"
	"github.com/drake/segbar/config"
	"github.com/drake/segbar/debug"
	"github.com/drake/segbar/module"
	"github.com/drake/segbar/style"
	"github.com/drake/segbar/text"
	"github.com/drake/segbar/timer"
)

func main() {
	width := flag.Int("width", 0, "Bar width in columns (0 = terminal width)")
	every := flag.Duration("every", 0, "Re-render at this interval instead of once")
	count := flag.Int("count", 0, "Stop after this many renders when -every is set (0 = forever)")
	color := flag.String("color", "auto", "Color output: auto, always or never")
	flag.Parse()

	if err := setColor(*color); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	w := *width
	if w <= 0 {
		w = detectWidth()
	}

	// Lua modules from the config dir, then any named on the command line
	scripts, err := config.ModuleScripts()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: listing module scripts:", err)
		os.Exit(1)
	}
	scripts = append(scripts, flag.Args()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	monitor := debug.NewMonitor(5 * time.Second)
	monitor.Start(ctx)

	b := defaultBar(style.DefaultStyles(), scripts,
		bar.WithLogger(debug.Logger()),
		bar.WithObserver(monitor.Observe),
	)

	b.Render(w)
	if *every <= 0 || *count == 1 {
		return
	}

	remaining := 0
	if *count > 1 {
		remaining = *count - 1
	}

	ticks := make(chan timer.Tick, 1)
	timers := timer.NewService(ticks)
	defer timers.CancelAll()
	timers.Every(*every, remaining)

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticks:
			b.Render(w)
			if t.Last {
				return
			}
		}
	}
}

// defaultBar lays out system info on the left, scripted modules in the
// middle and battery and clock on the right.
func defaultBar(s style.Styles, scripts []string, opts ...bar.Option) *bar.Bar {
	b := bar.New(bar.Sides{Left: true, Right: true}, opts...)

	b.Add(bar.StaticSpacer(1)).
		Add(bar.Status{
			Modules: []module.Module{module.NewLoad(s), module.NewNetwork(s)},
			Seps: bar.Three{
				Before: text.New("[", s.Bracket),
				Mid:    text.New(" | ", s.Separator),
				After:  text.New("]", s.Bracket),
			},
		}).
		Add(bar.DynSpacer{})

	if len(scripts) > 0 {
		mods := make([]module.Module, 0, len(scripts))
		for _, path := range scripts {
			mods = append(mods, module.NewLua(path))
		}
		b.Add(bar.Status{
			Modules: mods,
			Seps:    bar.Two{Before: text.Plain(" "), After: text.Plain(" ")},
		}).Add(bar.DynSpacer{})
	}

	b.Add(bar.Status{
		Modules: []module.Module{module.NewBattery(s), module.NewClock("", s.Clock)},
		Seps:    bar.One{Sep: text.New(" | ", s.Separator)},
	}).Add(bar.StaticSpacer(1))

	return b
}

// setColor selects the lipgloss color profile.
func setColor(mode string) error {
	switch mode {
	case "auto":
		// lipgloss detects the profile from stdout
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("invalid -color %q (want auto, always or never)", mode)
	}
	return nil
}

// stdoutFd is the descriptor whose terminal size sets the default width.
var stdoutFd = os.Stdout.Fd

// detectWidth returns the terminal width, then $COLUMNS, then 80.
func detectWidth() int {
	if w, _, err := term.GetSize(stdoutFd()); err == nil && w > 0 {
		return w
	}
	if c, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && c > 0 {
		return c
	}
	return 80
}
