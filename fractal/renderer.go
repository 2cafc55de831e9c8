package fractal

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fractalview/view"
)

// Renderer rasterizes a view.State into an RGBA image on the CPU.
//
// Create it once and reuse it; it holds no per-frame state.
type Renderer struct {
	workers int
}

// NewRenderer returns a renderer using up to workers goroutines.
// A non-positive count selects GOMAXPROCS.
func NewRenderer(workers int) *Renderer {
	r := &Renderer{}
	r.SetWorkers(workers)
	return r
}

// SetWorkers bounds the number of rows rendered concurrently.
// A non-positive n selects GOMAXPROCS.
func (r *Renderer) SetWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	r.workers = n
}

// Workers returns the current concurrency bound.
func (r *Renderer) Workers() int { return r.workers }

// Render evaluates every pixel of dst for s.
//
// Pixels are sampled at their centres. Image row 0 is the top of the window,
// which is the largest y in the bottom-left-origin coordinates Pixel expects.
// The viewport used for normalization is s.Viewport, not dst's bounds, so
// callers should keep both in sync.
func (r *Renderer) Render(dst *image.RGBA, s view.State) {
	if r == nil || dst == nil {
		return
	}
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	height := float64(s.Viewport.Height)

	var g errgroup.Group
	g.SetLimit(r.workers)
	for y := 0; y < h; y++ {
		y := y
		g.Go(func() error {
			py := height - float64(y) - 0.5
			row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
			for x := 0; x < w; x++ {
				c := Pixel(float64(x)+0.5, py, s)
				o := x * 4
				row[o+0] = c.R
				row[o+1] = c.G
				row[o+2] = c.B
				row[o+3] = c.A
			}
			return nil
		})
	}
	g.Wait()
}
