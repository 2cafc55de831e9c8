package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	// Out, when set, receives the last presented frame as PNG.
	Out string
}

// RunHeadless steps the app on a ticker without opening a window.
func RunHeadless(ctx context.Context, opts Options, cfg HeadlessConfig, newApp func(HAL) (App, error)) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(opts)
	app, err := newApp(h)
	if err != nil {
		return err
	}

	err = runTicks(ctx, app, d, cfg.Ticks)
	if errors.Is(err, ErrQuit) {
		err = nil
	}
	if err != nil {
		return err
	}
	if cfg.Out != "" {
		if err := WritePNG(cfg.Out, h.fb.Snapshot(nil)); err != nil {
			return err
		}
		h.logger.Info("frame written", "path", cfg.Out)
	}
	return nil
}

func runTicks(ctx context.Context, app App, d time.Duration, ticks uint64) error {
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := app.Step(); err != nil {
				return err
			}
			tick++
			if ticks > 0 && tick >= ticks {
				return nil
			}
		}
	}
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
