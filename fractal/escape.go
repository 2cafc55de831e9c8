// Package fractal evaluates the Mandelbrot and Julia sets with the escape-time
// algorithm and renders them into RGBA images.
//
// Evaluation is a pure function of a pixel coordinate and a view.State, so
// pixels can be computed in any order and on any number of goroutines.
package fractal

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"fractalview/view"
)

const (
	// MaxIter bounds the orbit length; points that survive it are in the set.
	MaxIter = 128
	// Bailout is the orbit radius beyond which a point is known to diverge.
	Bailout = 2.0
	// HueOffset rotates the palette so that fast escapes start at blue.
	HueOffset = 0.6
)

// Inside is the color of points that never escape.
var Inside = color.RGBA{R: 0, G: 0, B: 0, A: 0xFF}

// Normalize maps a pixel coordinate to clip space. Both axes are divided by the
// width, so the x range is [-1, 1] and y is stretched by the aspect ratio.
func Normalize(px, py float64, res view.Viewport) view.Vec2 {
	w, h := float64(res.Width), float64(res.Height)
	return view.Vec2{
		X: (px - w/2) / w * 2,
		Y: (py - h/2) / w * 2,
	}
}

// Escape iterates z ← z² + c from z while |z| < Bailout and returns the number
// of updates applied. A start point already outside the radius escapes with 0.
// escaped is false when all MaxIter updates ran, even if the last one left the
// radius.
func Escape(z, c view.Vec2) (iter int, escaped bool) {
	x, y := z.X, z.Y
	i := 0
	for i < MaxIter && math.Hypot(x, y) < Bailout {
		x, y = x*x-y*y+c.X, 2*x*y+c.Y
		i++
	}
	return i, i < MaxIter
}

// Hue returns the palette hue in [0, 1) for an escape at iteration iter.
func Hue(iter int) float64 {
	h := math.Mod(float64(iter)/MaxIter+HueOffset, 1)
	if h < 0 {
		h++
	}
	return h
}

// Palette returns the fully saturated color for an escape at iteration iter.
func Palette(iter int) colorful.Color {
	return colorful.Hsv(Hue(iter)*360, 1, 1)
}

// Shade converts an escape result into a color.
func Shade(iter int, escaped bool) color.RGBA {
	if !escaped {
		return Inside
	}
	r, g, b := Palette(iter).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Orbit returns the starting point and constant for a clip-space coordinate.
//
// In Mandelbrot mode the coordinate picks c and z starts at the origin. In
// Julia mode c is the primary pan, chosen by dragging the primary view, and
// the coordinate picks z in the secondary view.
func Orbit(coord view.Vec2, s view.State) (z, c view.Vec2) {
	if s.Mode == view.ModeJulia {
		v := s.Secondary
		z = view.Vec2{X: coord.X/v.Scale + v.Pan.X, Y: coord.Y/v.Scale + v.Pan.Y}
		return z, s.Primary.Pan
	}
	v := s.Primary
	c = view.Vec2{X: coord.X/v.Scale + v.Pan.X, Y: coord.Y/v.Scale + v.Pan.Y}
	return view.Vec2{}, c
}

// Evaluate returns the color of a clip-space coordinate.
func Evaluate(coord view.Vec2, s view.State) color.RGBA {
	z, c := Orbit(coord, s)
	return Shade(Escape(z, c))
}

// Pixel returns the color of a pixel given with a bottom-left origin.
func Pixel(px, py float64, s view.State) color.RGBA {
	return Evaluate(Normalize(px, py, s.Viewport), s)
}
