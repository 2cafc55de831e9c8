package app

import (
	"fractalview/hal"
	"fractalview/internal/config"
	"fractalview/view"
)

// wheelDelta converts wheel notches to the continuous scroll unit (1/120 of a
// notch), so one notch adds 0.1 to the scale.
const wheelDelta = 120

// translatePointer maps a host pointer event onto the view's event set.
// Left drags the primary view, right drags the secondary view and the middle
// button toggles the mode.
func translatePointer(ev hal.PointerEvent, scroll string) (view.Event, bool) {
	switch ev.Kind {
	case hal.PointerMove:
		return view.PointerMoveEvent{X: ev.X, Y: ev.Y}, true

	case hal.PointerDown:
		switch ev.Button {
		case hal.MouseLeft:
			return view.ButtonDownEvent{Button: view.ButtonPrimary, X: ev.X, Y: ev.Y}, true
		case hal.MouseRight:
			return view.ButtonDownEvent{Button: view.ButtonSecondary, X: ev.X, Y: ev.Y}, true
		case hal.MouseMiddle:
			return view.ToggleModeEvent{}, true
		}

	case hal.PointerUp:
		switch ev.Button {
		case hal.MouseLeft:
			return view.ButtonUpEvent{Button: view.ButtonPrimary}, true
		case hal.MouseRight:
			return view.ButtonUpEvent{Button: view.ButtonSecondary}, true
		}

	case hal.PointerWheel:
		if ev.WheelY == 0 {
			return nil, false
		}
		if scroll == config.ScrollContinuous {
			return view.ScrollEvent{Delta: ev.WheelY * wheelDelta}, true
		}
		if ev.WheelY > 0 {
			return view.ScrollEvent{Tick: view.TickUp}, true
		}
		return view.ScrollEvent{Tick: view.TickDown}, true
	}
	return nil, false
}

func translateKey(ev hal.KeyEvent) (view.Event, bool) {
	if ev.Press && ev.Code == hal.KeySpace {
		return view.ToggleModeEvent{}, true
	}
	return nil, false
}
