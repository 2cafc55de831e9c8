package hal

import (
	"errors"
	"image"
	"log/slog"
)

// ErrQuit ends a run cleanly when returned from App.Step.
var ErrQuit = errors.New("quit")

// Framebuffer is a double-buffered RGBA surface.
//
// The app renders into Image and publishes it with Present; the host reads the
// last presented frame with Snapshot.
type Framebuffer interface {
	Width() int
	Height() int
	Image() *image.RGBA
	Resize(w, h int)
	Present() error
	Snapshot(dst *image.RGBA) *image.RGBA
}

// MouseButton is a physical pointer button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// PointerKind tells what a PointerEvent reports.
type PointerKind uint8

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerUp
	PointerWheel
)

// PointerEvent is a toolkit-neutral mouse event in window pixels, top-left
// origin. WheelY is in notches, positive away from the user.
type PointerEvent struct {
	Kind   PointerKind
	Button MouseButton
	X, Y   float64
	WheelY float64
}

// Pointer provides pointer events (best-effort on each platform).
type Pointer interface {
	Events() <-chan PointerEvent
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeySpace
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Pointer() Pointer
	Keyboard() Keyboard
}

// HAL is the only contact point between the viewer and the host.
type HAL interface {
	Logger() *slog.Logger
	Display() Display
	Input() Input
}

// App is driven once per host tick.
type App interface {
	Step() error
}

// ShaderProgram is implemented by apps that draw with a GPU shader instead of
// the framebuffer. Hosts without a GPU ignore it.
type ShaderProgram interface {
	ShaderSource() []byte
	ShaderUniforms() map[string]any
}

// Overlay is implemented by apps that want a text line drawn over the frame.
type Overlay interface {
	Overlay() string
}
