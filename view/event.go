package view

// Event is an input event understood by Controller.Handle.
type Event interface {
	isEvent()
}

type ButtonDownEvent struct {
	Button Button
	X, Y   float64
}

type ButtonUpEvent struct {
	Button Button
}

type PointerMoveEvent struct {
	X, Y float64
}

// ScrollEvent carries either a continuous delta (in 1/120 notch units) or a
// discrete tick. Hosts should fill exactly one of them.
type ScrollEvent struct {
	Delta float64
	Tick  Tick
}

type ToggleModeEvent struct{}

type ResizeEvent struct {
	Width, Height int
}

func (ButtonDownEvent) isEvent()  {}
func (ButtonUpEvent) isEvent()    {}
func (PointerMoveEvent) isEvent() {}
func (ScrollEvent) isEvent()      {}
func (ToggleModeEvent) isEvent()  {}
func (ResizeEvent) isEvent()      {}

// Handle applies ev and reports whether a redraw is needed.
func (c *Controller) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case ButtonDownEvent:
		c.ButtonDown(ev.Button, ev.X, ev.Y)
	case ButtonUpEvent:
		c.ButtonUp(ev.Button)
	case PointerMoveEvent:
		return c.PointerMove(ev.X, ev.Y)
	case ScrollEvent:
		c.Scroll(ev.Delta, ev.Tick)
		return true
	case ToggleModeEvent:
		c.ToggleMode()
		return true
	case ResizeEvent:
		return c.Resize(ev.Width, ev.Height)
	}
	return false
}
