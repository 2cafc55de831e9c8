//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostPointer struct {
	ch chan PointerEvent

	x, y int
	seen bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 256)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

var pointerButtons = [...]struct {
	key ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseLeft},
	{ebiten.MouseButtonRight, MouseRight},
	{ebiten.MouseButtonMiddle, MouseMiddle},
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)

	// Motion first so that a press reported in the same frame starts the drag
	// at the current position.
	if !p.seen || x != p.x || y != p.y {
		p.x, p.y, p.seen = x, y, true
		p.emit(PointerEvent{Kind: PointerMove, X: fx, Y: fy})
	}

	for _, b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b.key) {
			p.emit(PointerEvent{Kind: PointerDown, Button: b.btn, X: fx, Y: fy})
		}
		if inpututil.IsMouseButtonJustReleased(b.key) {
			p.emit(PointerEvent{Kind: PointerUp, Button: b.btn, X: fx, Y: fy})
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		p.emit(PointerEvent{Kind: PointerWheel, X: fx, Y: fy, WheelY: wy})
	}
}

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	keys := [...]struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEscape, KeyEscape},
		{ebiten.KeySpace, KeySpace},
	}
	for _, kk := range keys {
		if inpututil.IsKeyJustPressed(kk.key) {
			emit(kk.code, true)
		}
		if inpututil.IsKeyJustReleased(kk.key) {
			emit(kk.code, false)
		}
	}
}
