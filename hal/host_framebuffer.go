package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu    sync.Mutex
	back  *image.RGBA
	front *image.RGBA
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	f := &hostFramebuffer{}
	f.Resize(width, height)
	return f
}

func (f *hostFramebuffer) Width() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.back.Bounds().Dx()
}

func (f *hostFramebuffer) Height() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.back.Bounds().Dy()
}

// Image returns the back buffer. It is only valid until the next Resize.
func (f *hostFramebuffer) Image() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.back
}

// Resize reallocates both buffers. The front buffer starts opaque black so a
// window never shows garbage before the first Present.
func (f *hostFramebuffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.back != nil && f.back.Bounds().Dx() == w && f.back.Bounds().Dy() == h {
		return
	}
	f.back = image.NewRGBA(image.Rect(0, 0, w, h))
	f.front = image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(f.front.Pix); i += 4 {
		f.front.Pix[i] = 0xFF
	}
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front.Pix, f.back.Pix)
	return nil
}

// Snapshot copies the last presented frame into dst, reallocating it when the
// size differs, and returns it.
func (f *hostFramebuffer) Snapshot(dst *image.RGBA) *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	if dst == nil || dst.Bounds() != f.front.Bounds() {
		dst = image.NewRGBA(f.front.Bounds())
	}
	copy(dst.Pix, f.front.Pix)
	return dst
}
