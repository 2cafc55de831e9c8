// Package view holds the pan/zoom state of the fractal viewer and the event
// handlers that update it.
//
// A Controller is owned by the event loop and mutated from a single goroutine.
// Renderers receive a State value from Snapshot and never touch the controller.
package view

import (
	"fmt"
	"strings"
)

// InitialScale is the zoom factor of a fresh viewport.
const InitialScale = 0.5

// Vec2 is a point or offset in the complex plane or in pointer space.
type Vec2 struct {
	X, Y float64
}

// ViewState is the pan offset and zoom of one viewport.
type ViewState struct {
	Pan   Vec2
	Scale float64
}

// Mode selects the fractal being shown.
type Mode uint8

const (
	ModeMandelbrot Mode = iota
	ModeJulia
)

func (m Mode) String() string {
	switch m {
	case ModeMandelbrot:
		return "mandelbrot"
	case ModeJulia:
		return "julia"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mandelbrot", "":
		return ModeMandelbrot, nil
	case "julia":
		return ModeJulia, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Viewport is the size of the drawing surface in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Button identifies which viewport a drag applies to.
type Button uint8

const (
	// ButtonPrimary drags the primary view (the Mandelbrot plane, and the
	// Julia constant in Julia mode).
	ButtonPrimary Button = iota
	// ButtonSecondary drags the secondary view (the Julia plane).
	ButtonSecondary

	numButtons
)

// State is an immutable snapshot of everything a frame depends on.
type State struct {
	Mode      Mode
	Primary   ViewState
	Secondary ViewState
	Viewport  Viewport
}

// DefaultState returns the start-up state for a viewport.
func DefaultState(vp Viewport) State {
	return State{
		Mode:      ModeMandelbrot,
		Primary:   ViewState{Scale: InitialScale},
		Secondary: ViewState{Scale: InitialScale},
		Viewport:  vp,
	}
}

// ScaleFor returns the scale the evaluator divides by in the current mode.
func (s State) ScaleFor() float64 {
	if s.Mode == ModeJulia {
		return s.Secondary.Scale
	}
	return s.Primary.Scale
}
