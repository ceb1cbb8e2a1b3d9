// tix is a terminal ticket list that renders only the rows on screen, so
// scrolling stays smooth over tens of thousands of tickets.
//
// Tickets come from a generated mock dataset that is "fetched" with a
// simulated delay. Rows can be created and edited in place; nothing is
// persisted.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	_ "github.com/vanderheijden86/tix/internal/ttyguard"

	"github.com/vanderheijden86/tix/internal/datasource"
	"github.com/vanderheijden86/tix/pkg/config"
	"github.com/vanderheijden86/tix/pkg/dataset"
	"github.com/vanderheijden86/tix/pkg/debug"
	"github.com/vanderheijden86/tix/pkg/feed"
	"github.com/vanderheijden86/tix/pkg/ui"
	"github.com/vanderheijden86/tix/pkg/version"
	"github.com/vanderheijden86/tix/pkg/watcher"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "tix: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath   string
	debugLog     string
	robotWindow  bool
	robotMetrics bool
	offset       int
	height       int
	showVersion  bool

	flags *pflag.FlagSet

	// Values below only apply when the flag was given.
	store      string
	count      int
	seed       int64
	latency    time.Duration
	failRate   float64
	itemHeight int
	gap        int
}

func parseFlags(args []string) (*options, error) {
	o := &options{}
	fs := pflag.NewFlagSet("tix", pflag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", config.ConfigPath(), "path to config.yaml")
	fs.StringVar(&o.debugLog, "debug-log", "", "write debug output to this file (enables TIX_DEBUG)")
	fs.BoolVar(&o.robotWindow, "robot-window", false, "print the visible window for --offset/--height as JSON and exit")
	fs.BoolVar(&o.robotMetrics, "robot-metrics", false, "print timing metrics as JSON on exit")
	fs.IntVar(&o.offset, "offset", 0, "scroll offset in rows (with --robot-window)")
	fs.IntVar(&o.height, "height", 24, "list container height in rows (with --robot-window)")
	fs.BoolVar(&o.showVersion, "version", false, "show version")

	fs.StringVar(&o.store, "store", "", "ticket store backend: memory or sqlite")
	fs.IntVar(&o.count, "count", dataset.DefaultCount, "number of generated tickets")
	fs.Int64Var(&o.seed, "seed", 42, "dataset seed (0 = random)")
	fs.DurationVar(&o.latency, "latency", feed.DefaultLatency, "simulated fetch delay")
	fs.Float64Var(&o.failRate, "fail-rate", 0, "probability that a fetch fails")
	fs.IntVarP(&o.itemHeight, "item-height", "H", 2, "terminal rows per ticket")
	fs.IntVar(&o.gap, "gap", 0, "blank rows between tickets")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	o.flags = fs
	return o, nil
}

// apply copies the flags that were set on the command line into cfg. It is
// re-run after every config reload so flags keep precedence over the file.
func (o *options) apply(cfg *config.Config) {
	changed := o.flags.Changed
	if changed("store") {
		cfg.Data.Store = o.store
	}
	if changed("count") {
		cfg.Data.Count = o.count
	}
	if changed("seed") {
		cfg.Data.Seed = o.seed
	}
	if changed("latency") {
		cfg.Data.Latency = o.latency
	}
	if changed("fail-rate") {
		cfg.Data.FailRate = o.failRate
	}
	if changed("item-height") {
		cfg.UI.ItemHeight = o.itemHeight
	}
	if changed("gap") {
		cfg.UI.Gap = o.gap
	}
}

// loadConfig layers defaults, the config file, TIX_* variables and flags.
func (o *options) loadConfig(getenv func(string) string) (config.Config, error) {
	cfg := config.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = config.LoadFrom(o.configPath); err != nil {
			return cfg, err
		}
	}
	if err := config.ApplyEnv(&cfg, getenv); err != nil {
		return cfg, err
	}
	o.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	if o.showVersion {
		fmt.Fprintf(stdout, "tix %s\n", version.String())
		return nil
	}

	if o.debugLog != "" {
		closer, err := debug.OpenFile(o.debugLog)
		if err != nil {
			return err
		}
		defer closer.Close()
	}

	cfg, err := o.loadConfig(os.Getenv)
	if err != nil {
		return err
	}

	if o.robotWindow {
		return writeRobotWindow(stdout, cfg, o.offset, o.height, o.robotMetrics)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal (use --robot-window for scripted output)")
	}

	err = runTUI(cfg, o, fd)
	if o.robotMetrics {
		if werr := writeMetrics(stdout); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

func runTUI(cfg config.Config, o *options, fd int) error {
	kind, err := datasource.ParseSourceType(cfg.Data.Store)
	if err != nil {
		return err
	}
	s, err := datasource.Open(kind, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	f := feed.New(s, feed.Options{
		Latency:  cfg.Data.Latency,
		FailRate: cfg.Data.FailRate,
		Seed:     cfg.Data.Seed,
		Loader:   feed.DatasetLoader(dataset.Config{Seed: cfg.Data.Seed, Count: cfg.Data.Count}),
	})

	m := ui.NewModel(f, cfg)
	if o.configPath != "" {
		w, err := watcher.NewWatcher(o.configPath,
			watcher.WithOnError(func(err error) { debug.Log("config watcher: %v", err) }),
		)
		if err == nil {
			err = w.Start()
		}
		if err != nil {
			debug.Log("config watcher disabled: %v", err)
		} else {
			m.SetConfigWatcher(w, func() (config.Config, error) {
				return o.loadConfig(os.Getenv)
			})
		}
	}
	defer m.Stop()

	// Size the first frame before Bubble Tea reports the terminal size.
	if width, height, err := term.GetSize(fd); err == nil {
		next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
		m = next.(ui.Model)
	}

	return runTUIProgram(m)
}

func runTUIProgram(m ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	final, err := p.Run()
	if fm, ok := final.(ui.Model); ok {
		fm.Stop()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running tix: %w", err)
	}
	return nil
}
