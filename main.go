// Command fractalview is an interactive Mandelbrot/Julia viewer.
//
// Left-drag pans the Mandelbrot plane (or picks the Julia constant), right-drag
// pans the Julia plane, the wheel zooms, and the middle button or space toggles
// between the two fractals.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"fractalview/app"
	"fractalview/hal"
	"fractalview/internal/config"
)

func main() {
	var (
		cfgPath  string
		headless hal.HeadlessConfig
		verbose  bool
	)
	def := config.Default()
	cfg := def
	flag.StringVar(&cfgPath, "config", "", "TOML settings file; flags override it.")
	flag.IntVar(&cfg.Width, "width", def.Width, "Window width.")
	flag.IntVar(&cfg.Height, "height", def.Height, "Window height.")
	flag.IntVar(&cfg.Workers, "workers", def.Workers, "Render goroutines (0 = GOMAXPROCS).")
	flag.StringVar(&cfg.Mode, "mode", def.Mode, "Start in mandelbrot or julia mode.")
	flag.StringVar(&cfg.Scroll, "scroll", def.Scroll, "Wheel dialect: tick (x1.1 per notch) or continuous (+0.1 per notch).")
	flag.BoolVar(&cfg.GPU, "gpu", def.GPU, "Evaluate the fractal in a shader instead of on the CPU.")
	flag.BoolVar(&cfg.Fullscreen, "fullscreen", def.Fullscreen, "Start fullscreen; -fullscreen=false opens a window of -width x -height.")
	flag.BoolVar(&cfg.HUD, "hud", def.HUD, "Show the view parameters.")
	flag.BoolVar(&verbose, "v", false, "Log every frame.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 1, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&headless.Out, "out", "", "Write the last headless frame to this PNG file.")
	flag.Parse()

	if cfgPath != "" {
		fileCfg, err := config.Load(cfgPath)
		if err != nil {
			fatal(err)
		}
		cfg = overrideSetFlags(fileCfg, cfg)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	opts := hal.Options{Width: cfg.Width, Height: cfg.Height, LogLevel: logLevel(cfg.LogLevel)}
	newApp := func(h hal.HAL) (hal.App, error) { return app.Build(h, cfg) }

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		newHeadless := func(h hal.HAL) (hal.App, error) { return app.BuildHeadless(h, cfg) }
		if err := hal.RunHeadless(ctx, opts, headless, newHeadless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
		return
	}

	wcfg := hal.WindowConfig{Title: "fractalview", Fullscreen: cfg.Fullscreen, TPS: cfg.TPS}
	if err := hal.RunWindow(opts, wcfg, newApp); err != nil {
		fatal(err)
	}
}

// overrideSetFlags copies the flags given on the command line over the
// settings loaded from a file.
func overrideSetFlags(file, flags config.Config) config.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			file.Width = flags.Width
		case "height":
			file.Height = flags.Height
		case "workers":
			file.Workers = flags.Workers
		case "mode":
			file.Mode = flags.Mode
		case "scroll":
			file.Scroll = flags.Scroll
		case "gpu":
			file.GPU = flags.GPU
		case "fullscreen":
			file.Fullscreen = flags.Fullscreen
		case "hud":
			file.HUD = flags.HUD
		}
	})
	return file
}

func logLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
