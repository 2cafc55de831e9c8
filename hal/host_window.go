//go:build cgo

package hal

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"fractalview/internal/buildinfo"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title      string
	Fullscreen bool
	TPS        int
}

// RunWindow starts a desktop window that displays the app's frames and
// forwards pointer and keyboard input. It blocks until the window closes or
// the app returns ErrQuit.
//
// When the app is a ShaderProgram its shader is compiled before the window
// opens, and a compile error is returned as is.
func RunWindow(opts Options, cfg WindowConfig, newApp func(HAL) (App, error)) error {
	h := newHost(opts)
	app, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, app: app}
	if prog, ok := app.(ShaderProgram); ok {
		g.prog = prog
		g.shader, err = ebiten.NewShader(prog.ShaderSource())
		if err != nil {
			return fmt.Errorf("compile fractal shader: %w", err)
		}
	}
	g.overlay, _ = app.(Overlay)

	title := cfg.Title
	if title == "" {
		title = "fractalview"
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.TPS)

	h.logger.Info("window starting", "width", opts.Width, "height", opts.Height, "gpu", g.shader != nil)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h   *hostHAL
	app App

	prog    ShaderProgram
	shader  *ebiten.Shader
	overlay Overlay

	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.ptr.poll()
	g.h.kbd.poll()
	if err := g.app.Step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.shader != nil {
		b := screen.Bounds()
		screen.DrawRectShader(b.Dx(), b.Dy(), g.shader, &ebiten.DrawRectShaderOptions{
			Uniforms: g.prog.ShaderUniforms(),
		})
	} else {
		g.drawFramebuffer(screen)
	}
	if g.overlay != nil {
		ebitenutil.DebugPrint(screen, g.overlay.Overlay())
	}
}

func (g *hostGame) drawFramebuffer(screen *ebiten.Image) {
	prev := g.img
	g.img = g.h.fb.Snapshot(g.img)
	w, h := g.img.Bounds().Dx(), g.img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	if g.fbImg == nil || g.img != prev {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout follows the window size so the fractal is drawn at one pixel per
// logical pixel. The app sees the new size through the framebuffer.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	outsideWidth = max(outsideWidth, 1)
	outsideHeight = max(outsideHeight, 1)
	g.h.fb.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
