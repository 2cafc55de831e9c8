package app

import (
	"context"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fractalview/fractal"
	"fractalview/hal"
	"fractalview/internal/config"
	"fractalview/view"
)

type memFramebuffer struct {
	img      *image.RGBA
	presents int
}

func (f *memFramebuffer) Width() int         { return f.img.Bounds().Dx() }
func (f *memFramebuffer) Height() int        { return f.img.Bounds().Dy() }
func (f *memFramebuffer) Image() *image.RGBA { return f.img }
func (f *memFramebuffer) Resize(w, h int)    { f.img = image.NewRGBA(image.Rect(0, 0, w, h)) }
func (f *memFramebuffer) Present() error     { f.presents++; return nil }
func (f *memFramebuffer) Snapshot(dst *image.RGBA) *image.RGBA {
	return f.img
}

type memPointer struct{ ch chan hal.PointerEvent }

func (p memPointer) Events() <-chan hal.PointerEvent { return p.ch }

type memKeyboard struct{ ch chan hal.KeyEvent }

func (k memKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type memHAL struct {
	fb  *memFramebuffer
	ptr memPointer
	kbd memKeyboard
}

func newMemHAL(w, h int) *memHAL {
	fb := &memFramebuffer{}
	fb.Resize(w, h)
	return &memHAL{
		fb:  fb,
		ptr: memPointer{ch: make(chan hal.PointerEvent, 16)},
		kbd: memKeyboard{ch: make(chan hal.KeyEvent, 16)},
	}
}

func (h *memHAL) Logger() *slog.Logger         { return slog.New(slog.NewTextHandler(io.Discard, nil)) }
func (h *memHAL) Display() hal.Display         { return h }
func (h *memHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *memHAL) Input() hal.Input             { return h }
func (h *memHAL) Pointer() hal.Pointer         { return h.ptr }
func (h *memHAL) Keyboard() hal.Keyboard       { return h.kbd }

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Width, cfg.Height = 32, 24
	cfg.Workers = 2
	return cfg
}

func TestFirstStepDraws(t *testing.T) {
	h := newMemHAL(32, 24)
	a, err := New(h, testConfig())
	require.NoError(t, err)

	require.NoError(t, a.Step())
	assert.Equal(t, 1, h.fb.presents)
	assert.Equal(t, uint64(1), a.Frames())

	s := a.State()
	want := fractal.Pixel(16.5, 24-12-0.5, s)
	assert.Equal(t, want, h.fb.img.RGBAAt(16, 12))

	require.NoError(t, a.Step())
	assert.Equal(t, 1, h.fb.presents, "idle step must not redraw")
}

func TestDragPansPrimary(t *testing.T) {
	h := newMemHAL(32, 24)
	a, err := New(h, testConfig())
	require.NoError(t, err)
	require.NoError(t, a.Step())

	h.ptr.ch <- hal.PointerEvent{Kind: hal.PointerDown, Button: hal.MouseLeft, X: 10, Y: 10}
	h.ptr.ch <- hal.PointerEvent{Kind: hal.PointerMove, X: 18, Y: 4}
	h.ptr.ch <- hal.PointerEvent{Kind: hal.PointerUp, Button: hal.MouseLeft, X: 18, Y: 4}
	require.NoError(t, a.Step())

	s := a.State()
	assert.InDelta(t, -(8.0/32*2)/view.InitialScale, s.Primary.Pan.X, 1e-12)
	assert.InDelta(t, (-6.0/24*2)/view.InitialScale, s.Primary.Pan.Y, 1e-12)
	assert.Equal(t, 2, h.fb.presents)
}

func TestWheelAndToggle(t *testing.T) {
	h := newMemHAL(32, 24)
	a, err := New(h, testConfig())
	require.NoError(t, err)

	h.ptr.ch <- hal.PointerEvent{Kind: hal.PointerWheel, WheelY: 1}
	h.ptr.ch <- hal.PointerEvent{Kind: hal.PointerDown, Button: hal.MouseMiddle}
	h.ptr.ch <- hal.PointerEvent{Kind: hal.PointerWheel, WheelY: -2}
	require.NoError(t, a.Step())

	s := a.State()
	assert.Equal(t, view.ModeJulia, s.Mode)
	assert.InDelta(t, view.InitialScale*view.ZoomStep, s.Primary.Scale, 1e-12)
	assert.InDelta(t, view.InitialScale/view.ZoomStep, s.Secondary.Scale, 1e-12)

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeySpace, Press: true}
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeySpace, Press: false}
	require.NoError(t, a.Step())
	assert.Equal(t, view.ModeMandelbrot, a.State().Mode)
}

func TestContinuousScroll(t *testing.T) {
	h := newMemHAL(32, 24)
	cfg := testConfig()
	cfg.Scroll = config.ScrollContinuous
	a, err := New(h, cfg)
	require.NoError(t, err)

	h.ptr.ch <- hal.PointerEvent{Kind: hal.PointerWheel, WheelY: 1}
	require.NoError(t, a.Step())
	assert.InDelta(t, view.InitialScale+0.1, a.State().Primary.Scale, 1e-12)
}

func TestResizeFollowsFramebuffer(t *testing.T) {
	h := newMemHAL(32, 24)
	a, err := New(h, testConfig())
	require.NoError(t, err)
	require.NoError(t, a.Step())

	h.fb.Resize(16, 16)
	require.NoError(t, a.Step())
	assert.Equal(t, view.Viewport{Width: 16, Height: 16}, a.State().Viewport)
	assert.Equal(t, 2, h.fb.presents)
}

func TestEscapeQuits(t *testing.T) {
	h := newMemHAL(8, 8)
	a, err := New(h, testConfig())
	require.NoError(t, err)

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	assert.ErrorIs(t, a.Step(), hal.ErrQuit)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Scale = 0
	_, err := New(newMemHAL(8, 8), cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestBuild(t *testing.T) {
	cfg := testConfig()

	plain, err := Build(newMemHAL(8, 8), cfg)
	require.NoError(t, err)
	_, isProg := plain.(hal.ShaderProgram)
	_, isHUD := plain.(hal.Overlay)
	assert.False(t, isProg)
	assert.False(t, isHUD)

	cfg.GPU, cfg.HUD = true, true
	h := newMemHAL(8, 8)
	both, err := Build(h, cfg)
	require.NoError(t, err)
	prog, ok := both.(hal.ShaderProgram)
	require.True(t, ok)
	ov, ok := both.(hal.Overlay)
	require.True(t, ok)

	require.NoError(t, both.Step())
	assert.Zero(t, h.fb.presents, "gpu mode leaves the framebuffer alone")
	assert.Equal(t, fractal.ShaderSource, prog.ShaderSource())
	assert.Equal(t, []float32{8, 8}, prog.ShaderUniforms()["Resolution"])
	assert.Contains(t, ov.Overlay(), "mandelbrot")
}

func TestBuildHeadlessRendersGPURequest(t *testing.T) {
	cfg := testConfig()
	cfg.GPU, cfg.HUD = true, true
	out := filepath.Join(t.TempDir(), "frame.png")

	err := hal.RunHeadless(context.Background(),
		hal.Options{Width: 32, Height: 24, LogWriter: io.Discard},
		hal.HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 2, Out: out},
		func(h hal.HAL) (hal.App, error) { return BuildHeadless(h, cfg) },
	)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	lit := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, g, bl, _ := img.At(x, y).RGBA(); r|g|bl != 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit, "headless frame must not be blank")

	built, err := BuildHeadless(newMemHAL(8, 8), cfg)
	require.NoError(t, err)
	_, isProg := built.(hal.ShaderProgram)
	assert.False(t, isProg)
	_, isHUD := built.(hal.Overlay)
	assert.True(t, isHUD)
}

func TestTranslatePointer(t *testing.T) {
	tcs := []struct {
		ev   hal.PointerEvent
		want view.Event
	}{
		{ev: hal.PointerEvent{Kind: hal.PointerDown, Button: hal.MouseRight, X: 1, Y: 2},
			want: view.ButtonDownEvent{Button: view.ButtonSecondary, X: 1, Y: 2}},
		{ev: hal.PointerEvent{Kind: hal.PointerUp, Button: hal.MouseRight},
			want: view.ButtonUpEvent{Button: view.ButtonSecondary}},
		{ev: hal.PointerEvent{Kind: hal.PointerUp, Button: hal.MouseMiddle}, want: nil},
		{ev: hal.PointerEvent{Kind: hal.PointerWheel}, want: nil},
		{ev: hal.PointerEvent{Kind: hal.PointerWheel, WheelY: -0.5},
			want: view.ScrollEvent{Tick: view.TickDown}},
	}
	for _, tc := range tcs {
		got, ok := translatePointer(tc.ev, config.ScrollTick)
		if tc.want == nil {
			if ok {
				t.Fatalf("translatePointer(%+v) = %#v; want none", tc.ev, got)
			}
			continue
		}
		if !ok || got != tc.want {
			t.Fatalf("translatePointer(%+v) = %#v, %v; want %#v", tc.ev, got, ok, tc.want)
		}
	}
}
