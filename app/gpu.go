package app

import (
	"fmt"

	"fractalview/fractal"
	"fractalview/hal"
	"fractalview/internal/config"
)

// GPUApp draws with the fractal shader; the window host detects it through
// hal.ShaderProgram.
type GPUApp struct {
	*App
}

func (g GPUApp) ShaderSource() []byte { return fractal.ShaderSource }

func (g GPUApp) ShaderUniforms() map[string]any { return fractal.Uniforms(g.State()) }

// Build returns the app the host should run for cfg: a GPUApp when the
// shader is requested, wrapped with a text overlay when the HUD is on.
func Build(h hal.HAL, cfg config.Config) (hal.App, error) {
	a, err := New(h, cfg)
	if err != nil {
		return nil, err
	}
	switch {
	case cfg.GPU && cfg.HUD:
		return gpuHUDApp{GPUApp{App: a}}, nil
	case cfg.GPU:
		return GPUApp{App: a}, nil
	case cfg.HUD:
		return hudApp{App: a}, nil
	}
	return a, nil
}

// BuildHeadless is Build for hosts without a shader path. A GPU request is
// served by the CPU renderer so the framebuffer always holds the frame.
func BuildHeadless(h hal.HAL, cfg config.Config) (hal.App, error) {
	if cfg.GPU {
		h.Logger().Warn("no shader support in headless mode, rendering on the CPU")
		cfg.GPU = false
	}
	return Build(h, cfg)
}

func (a *App) status() string {
	s := a.snap
	return fmt.Sprintf("%s  pan %.6g,%.6g  scale %.4g\njulia pan %.6g,%.6g  julia scale %.4g",
		s.Mode,
		s.Primary.Pan.X, s.Primary.Pan.Y, s.Primary.Scale,
		s.Secondary.Pan.X, s.Secondary.Pan.Y, s.Secondary.Scale,
	)
}

type hudApp struct {
	*App
}

func (h hudApp) Overlay() string { return h.status() }

type gpuHUDApp struct {
	GPUApp
}

func (h gpuHUDApp) Overlay() string { return h.status() }
