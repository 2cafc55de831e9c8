package hal

import (
	"io"
	"log/slog"
	"os"
)

// Options configures the host HAL.
type Options struct {
	Width    int
	Height   int
	LogLevel slog.Level
	// LogWriter defaults to os.Stderr.
	LogWriter io.Writer
}

type hostHAL struct {
	logger *slog.Logger
	fb     *hostFramebuffer
	ptr    *hostPointer
	kbd    *hostKeyboard
}

// New returns a host HAL implementation.
func New(opts Options) HAL {
	return newHost(opts)
}

func newHost(opts Options) *hostHAL {
	w := opts.LogWriter
	if w == nil {
		w = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: opts.LogLevel}))
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(opts.Width, opts.Height),
		ptr:    newHostPointer(),
		kbd:    newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() *slog.Logger { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return hostInput{ptr: h.ptr, kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr *hostPointer
	kbd *hostKeyboard
}

func (in hostInput) Pointer() Pointer   { return in.ptr }
func (in hostInput) Keyboard() Keyboard { return in.kbd }
