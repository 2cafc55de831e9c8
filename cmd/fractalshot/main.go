// Command fractalshot renders a single fractal frame to a PNG file without
// opening a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"fractalview/fractal"
	"fractalview/hal"
	"fractalview/internal/config"
	"fractalview/view"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "fractalshot:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("fractalshot", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "TOML settings file.")
	out := fs.String("o", "fractal.png", "Output PNG path.")
	width := fs.Int("width", 0, "Image width (overrides config).")
	height := fs.Int("height", 0, "Image height (overrides config).")
	workers := fs.Int("workers", 0, "Render goroutines (0 = GOMAXPROCS).")
	mode := fs.String("mode", "", "mandelbrot or julia (overrides config).")
	panX := fs.Float64("x", 0, "Primary pan x (Julia constant real part).")
	panY := fs.Float64("y", 0, "Primary pan y (Julia constant imaginary part).")
	scale := fs.Float64("scale", 0, "Primary scale (overrides config).")
	jx := fs.Float64("jx", 0, "Secondary pan x.")
	jy := fs.Float64("jy", 0, "Secondary pan y.")
	jscale := fs.Float64("jscale", 0, "Secondary scale (overrides config).")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *scale != 0 {
		cfg.Scale = *scale
	}
	if *jscale != 0 {
		cfg.JuliaScale = *jscale
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s := cfg.State()
	s.Primary.Pan = view.Vec2{X: *panX, Y: *panY}
	s.Secondary.Pan = view.Vec2{X: *jx, Y: *jy}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	r := fractal.NewRenderer(*workers)
	start := time.Now()
	r.Render(img, s)
	elapsed := time.Since(start)

	if err := hal.WritePNG(*out, img); err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d %s in %s (%d workers)\n", *out, cfg.Width, cfg.Height, s.Mode, elapsed.Round(time.Millisecond), r.Workers())
	return nil
}
