package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fractalview/fractal"
	"fractalview/hal"
	"fractalview/internal/config"
	"fractalview/view"
)

// App owns the view controller and turns host input into frames.
type App struct {
	h      hal.HAL
	log    *slog.Logger
	cfg    config.Config
	ctrl   *view.Controller
	render *fractal.Renderer

	// snap is the state of the last frame; shader uniforms are read from it.
	snap   view.State
	frames uint64
	drawn  bool
}

// New builds the viewer on top of h.
func New(h hal.HAL, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("app: no framebuffer")
	}
	fb := disp.Framebuffer()

	s := cfg.State()
	s.Viewport = view.Viewport{Width: fb.Width(), Height: fb.Height()}

	a := &App{
		h:      h,
		log:    h.Logger(),
		cfg:    cfg,
		ctrl:   view.NewController(s),
		render: fractal.NewRenderer(cfg.Workers),
		snap:   s,
	}
	a.log.Info("viewer ready",
		"mode", s.Mode,
		"viewport", fmt.Sprintf("%dx%d", s.Viewport.Width, s.Viewport.Height),
		"workers", a.render.Workers(),
		"gpu", cfg.GPU,
		"scroll", cfg.Scroll,
	)
	return a, nil
}

// Step drains pending input, applies it to the view and draws a frame when
// something changed. It must be called from a single goroutine.
func (a *App) Step() error {
	redraw := !a.drawn

	fb := a.h.Display().Framebuffer()
	if w, h := fb.Width(), fb.Height(); a.ctrl.Handle(view.ResizeEvent{Width: w, Height: h}) {
		a.log.Debug("resize", "width", w, "height", h)
		redraw = true
	}

	if in := a.h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			for {
				ev, ok := tryRecv(kbd.Events())
				if !ok {
					break
				}
				if ev.Press && ev.Code == hal.KeyEscape {
					return hal.ErrQuit
				}
				if vev, ok := translateKey(ev); ok {
					redraw = a.apply(vev) || redraw
				}
			}
		}
		if ptr := in.Pointer(); ptr != nil {
			for {
				ev, ok := tryRecv(ptr.Events())
				if !ok {
					break
				}
				if vev, ok := translatePointer(ev, a.cfg.Scroll); ok {
					redraw = a.apply(vev) || redraw
				}
			}
		}
	}

	if redraw {
		return a.draw(fb)
	}
	return nil
}

func (a *App) apply(ev view.Event) bool {
	redraw := a.ctrl.Handle(ev)
	if _, ok := ev.(view.ToggleModeEvent); ok {
		a.log.Info("mode", "mode", a.ctrl.Snapshot().Mode)
	}
	return redraw
}

func (a *App) draw(fb hal.Framebuffer) error {
	a.snap = a.ctrl.Snapshot()
	a.drawn = true
	a.frames++
	if a.cfg.GPU {
		return nil
	}

	start := time.Now()
	a.render.Render(fb.Image(), a.snap)
	if err := fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	a.log.Debug("frame",
		"n", a.frames,
		"mode", a.snap.Mode,
		"elapsed", time.Since(start),
	)
	return nil
}

// State returns the view state of the last drawn frame.
func (a *App) State() view.State { return a.snap }

// Frames returns the number of frames drawn so far.
func (a *App) Frames() uint64 { return a.frames }

func tryRecv[T any](ch <-chan T) (T, bool) {
	var zero T
	if ch == nil {
		return zero, false
	}
	select {
	case v, ok := <-ch:
		return v, ok
	default:
		return zero, false
	}
}
