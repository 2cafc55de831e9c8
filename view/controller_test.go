package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() *Controller {
	return NewController(DefaultState(Viewport{Width: 800, Height: 400}))
}

func TestDefaultState(t *testing.T) {
	s := DefaultState(Viewport{Width: 10, Height: 20})
	assert.Equal(t, ModeMandelbrot, s.Mode)
	assert.Equal(t, InitialScale, s.Primary.Scale)
	assert.Equal(t, InitialScale, s.Secondary.Scale)
	assert.Equal(t, Vec2{}, s.Primary.Pan)
	assert.Equal(t, Vec2{}, s.Secondary.Pan)
}

func TestDragRoundTrip(t *testing.T) {
	c := newTestController()

	c.ButtonDown(ButtonPrimary, 100, 100)
	require.True(t, c.PointerMove(140, 120))
	c.ButtonUp(ButtonPrimary)

	got := c.Snapshot().Primary.Pan
	wantX := -(40.0 / 800 * 2) / InitialScale
	wantY := (20.0 / 400 * 2) / InitialScale
	assert.InDelta(t, wantX, got.X, 1e-12)
	assert.InDelta(t, wantY, got.Y, 1e-12)

	assert.False(t, c.PointerMove(500, 300), "move without a held button")
	assert.Equal(t, got, c.Snapshot().Primary.Pan)
	assert.Equal(t, Vec2{}, c.Snapshot().Secondary.Pan)
}

func TestDragDeltasAreFrameToFrame(t *testing.T) {
	c := newTestController()
	c.ButtonDown(ButtonPrimary, 0, 0)
	c.PointerMove(10, 0)
	c.PointerMove(20, 0)

	last, held := c.Drag(ButtonPrimary).LastPointer()
	require.True(t, held)
	assert.Equal(t, Vec2{X: 20}, last)

	want := -2 * (10.0 / 800 * 2) / InitialScale
	assert.InDelta(t, want, c.Snapshot().Primary.Pan.X, 1e-12)
}

func TestSecondaryDragUsesOwnScale(t *testing.T) {
	c := newTestController()
	c.state.Secondary.Scale = 2

	c.ButtonDown(ButtonSecondary, 0, 0)
	c.PointerMove(80, 40)

	s := c.Snapshot()
	assert.Equal(t, Vec2{}, s.Primary.Pan)
	assert.InDelta(t, -(80.0/800*2)/2, s.Secondary.Pan.X, 1e-12)
	assert.InDelta(t, (40.0/400*2)/2, s.Secondary.Pan.Y, 1e-12)
}

func TestBothButtonsHeld(t *testing.T) {
	c := newTestController()
	c.ButtonDown(ButtonPrimary, 0, 0)
	c.ButtonDown(ButtonSecondary, 0, 0)
	require.True(t, c.PointerMove(8, 0))

	s := c.Snapshot()
	assert.NotZero(t, s.Primary.Pan.X)
	assert.Equal(t, s.Primary.Pan, s.Secondary.Pan)
}

func TestScrollTicks(t *testing.T) {
	c := newTestController()
	for n := 1; n <= 5; n++ {
		before := c.Snapshot().Primary.Scale
		c.Scroll(0, TickUp)
		after := c.Snapshot().Primary.Scale
		assert.Greater(t, after, before)
		assert.InDelta(t, InitialScale*math.Pow(ZoomStep, float64(n)), after, 1e-12)
	}
	for n := 4; n >= 0; n-- {
		before := c.Snapshot().Primary.Scale
		c.Scroll(0, TickDown)
		after := c.Snapshot().Primary.Scale
		assert.Less(t, after, before)
		assert.InDelta(t, InitialScale*math.Pow(ZoomStep, float64(n)), after, 1e-12)
	}
}

func TestScrollContinuous(t *testing.T) {
	c := newTestController()
	c.Scroll(120, TickDown)
	assert.InDelta(t, InitialScale+0.1, c.Snapshot().Primary.Scale, 1e-12)
}

func TestScrollTargetsActiveMode(t *testing.T) {
	c := newTestController()
	c.ToggleMode()
	c.Scroll(0, TickUp)

	s := c.Snapshot()
	assert.Equal(t, InitialScale, s.Primary.Scale)
	assert.InDelta(t, InitialScale*ZoomStep, s.Secondary.Scale, 1e-12)
	assert.Equal(t, s.Secondary.Scale, s.ScaleFor())
}

func TestToggleModeResetsSecondaryPan(t *testing.T) {
	c := newTestController()
	c.state.Primary.Pan = Vec2{X: 1, Y: 2}
	c.state.Secondary.Pan = Vec2{X: 3, Y: 4}
	c.state.Primary.Scale = 3
	c.state.Secondary.Scale = 5

	c.ToggleMode()

	s := c.Snapshot()
	assert.Equal(t, ModeJulia, s.Mode)
	assert.Equal(t, Vec2{X: 1, Y: 2}, s.Primary.Pan)
	assert.Equal(t, Vec2{}, s.Secondary.Pan)
	assert.Equal(t, 3.0, s.Primary.Scale)
	assert.Equal(t, 5.0, s.Secondary.Scale)

	c.ToggleMode()
	assert.Equal(t, ModeMandelbrot, c.Snapshot().Mode)
}

func TestHandle(t *testing.T) {
	c := newTestController()

	tcs := []struct {
		ev     Event
		redraw bool
	}{
		{ev: ButtonDownEvent{Button: ButtonPrimary, X: 1, Y: 1}, redraw: false},
		{ev: PointerMoveEvent{X: 2, Y: 2}, redraw: true},
		{ev: ButtonUpEvent{Button: ButtonPrimary}, redraw: false},
		{ev: PointerMoveEvent{X: 3, Y: 3}, redraw: false},
		{ev: ScrollEvent{Tick: TickUp}, redraw: true},
		{ev: ScrollEvent{}, redraw: true},
		{ev: ToggleModeEvent{}, redraw: true},
		{ev: ResizeEvent{Width: 800, Height: 400}, redraw: false},
		{ev: ResizeEvent{Width: 640, Height: 480}, redraw: true},
	}
	for i, tc := range tcs {
		if got := c.Handle(tc.ev); got != tc.redraw {
			t.Fatalf("Handle(%#v) [%d] = %v; want %v", tc.ev, i, got, tc.redraw)
		}
	}
	assert.Equal(t, Viewport{Width: 640, Height: 480}, c.Snapshot().Viewport)
}

func TestNaNPropagates(t *testing.T) {
	c := newTestController()
	c.ButtonDown(ButtonPrimary, 0, 0)
	c.PointerMove(math.NaN(), 0)
	assert.True(t, math.IsNaN(c.Snapshot().Primary.Pan.X))
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeMandelbrot, ModeJulia} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseMode(" Julia ")
	require.NoError(t, err)
	assert.Equal(t, ModeJulia, got)

	_, err = ParseMode("burning-ship")
	assert.Error(t, err)
}
