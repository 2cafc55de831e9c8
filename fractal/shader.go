package fractal

import (
	_ "embed"

	"fractalview/view"
)

// ShaderSource is a Kage program computing the same colors as Evaluate on the
// GPU. It expects the uniforms produced by Uniforms.
//
//go:embed escape.kage
var ShaderSource []byte

// Uniforms returns the per-frame shader parameters for s. In Julia mode Scale
// is the secondary view's scale, matching Orbit.
func Uniforms(s view.State) map[string]any {
	julia := float32(0)
	if s.Mode == view.ModeJulia {
		julia = 1
	}
	return map[string]any{
		"Resolution":   []float32{float32(s.Viewport.Width), float32(s.Viewport.Height)},
		"PrimaryPan":   []float32{float32(s.Primary.Pan.X), float32(s.Primary.Pan.Y)},
		"SecondaryPan": []float32{float32(s.Secondary.Pan.X), float32(s.Secondary.Pan.Y)},
		"Scale":        float32(s.ScaleFor()),
		"Julia":        julia,
	}
}
