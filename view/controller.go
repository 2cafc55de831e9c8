package view

// DragState tracks the last pointer position while a button is held.
type DragState struct {
	last Vec2
	held bool
}

// LastPointer returns the last recorded pointer position and whether the
// button is held.
func (d DragState) LastPointer() (Vec2, bool) { return d.last, d.held }

// Controller applies input to the view state.
type Controller struct {
	state State
	drag  [numButtons]DragState
}

// NewController returns a controller starting from s.
func NewController(s State) *Controller {
	return &Controller{state: s}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State { return c.state }

// Drag returns the drag state of a viewport.
func (c *Controller) Drag(b Button) DragState {
	if b >= numButtons {
		return DragState{}
	}
	return c.drag[b]
}

func (c *Controller) viewFor(b Button) *ViewState {
	if b == ButtonSecondary {
		return &c.state.Secondary
	}
	return &c.state.Primary
}

// ButtonDown starts a drag of the given viewport at (x, y).
func (c *Controller) ButtonDown(b Button, x, y float64) {
	if b >= numButtons {
		return
	}
	c.drag[b] = DragState{last: Vec2{X: x, Y: y}, held: true}
}

// ButtonUp ends a drag of the given viewport.
func (c *Controller) ButtonUp(b Button) {
	if b >= numButtons {
		return
	}
	c.drag[b] = DragState{}
}

// PointerMove pans every viewport with a held button by the delta since the
// previous pointer position. It reports whether anything moved.
//
// Both axes are normalized to the clip-space range [-1, 1]: x by the width
// and y by the height. Pointer y grows downward while the complex plane's
// imaginary axis grows upward, hence the opposite signs.
func (c *Controller) PointerMove(x, y float64) bool {
	moved := false
	w := float64(c.state.Viewport.Width)
	h := float64(c.state.Viewport.Height)
	for b := Button(0); b < numButtons; b++ {
		d := &c.drag[b]
		if !d.held {
			continue
		}
		dx, dy := x-d.last.X, y-d.last.Y
		v := c.viewFor(b)
		v.Pan.X -= (dx / w * 2) / v.Scale
		v.Pan.Y += (dy / h * 2) / v.Scale
		d.last = Vec2{X: x, Y: y}
		moved = true
	}
	return moved
}

// Tick is a discrete scroll-wheel notch.
type Tick int8

const (
	TickNone Tick = 0
	TickUp   Tick = 1
	TickDown Tick = -1
)

// ZoomStep is the factor applied per wheel notch.
const ZoomStep = 1.1

// Scroll zooms the active viewport: the primary one in Mandelbrot mode and the
// secondary one in Julia mode. A nonzero continuous delta takes precedence
// over a tick.
func (c *Controller) Scroll(delta float64, tick Tick) {
	v := &c.state.Primary
	if c.state.Mode == ModeJulia {
		v = &c.state.Secondary
	}
	switch {
	case delta != 0:
		v.Scale += delta / 1200
	case tick == TickUp:
		v.Scale *= ZoomStep
	case tick == TickDown:
		v.Scale /= ZoomStep
	}
}

// ToggleMode switches between Mandelbrot and Julia and recentres the
// secondary view.
func (c *Controller) ToggleMode() {
	if c.state.Mode == ModeJulia {
		c.state.Mode = ModeMandelbrot
	} else {
		c.state.Mode = ModeJulia
	}
	c.state.Secondary.Pan = Vec2{}
}

// Resize replaces the viewport and reports whether it changed.
func (c *Controller) Resize(width, height int) bool {
	vp := Viewport{Width: width, Height: height}
	if vp == c.state.Viewport {
		return false
	}
	c.state.Viewport = vp
	return true
}
