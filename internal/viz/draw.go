package viz

import (
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/render"
	"github.com/san-kum/orbitsim/internal/scene"
)

// referenceWidth is the window width particle radii and arrow lengths are
// specified against.
const referenceWidth = 800.0

type DrawOptions struct {
	Vectors bool
	// Forces draws each particle's current acceleration.
	Forces  bool
	Trails  bool
	Theme   Theme
}

// DrawScene clears c and draws every particle of s through vp. vp must be
// sized to the canvas in sub-pixels. Trails go first so bodies and vectors
// stay on top.
func DrawScene(c *Canvas, s *scene.Scene, vp render.Viewport, opts DrawOptions) {
	c.Clear()
	scale := vp.Width / referenceWidth

	if opts.Trails {
		for _, p := range s.Particles() {
			trail := p.TrailNewest()
			for i, pt := range trail {
				x, y := pixel(vp.ToScreen(pt))
				c.SetColor(x, y, opts.Theme.TrailColor(i, len(trail)))
			}
		}
	}

	body := string(opts.Theme.Body)
	for _, p := range s.Particles() {
		x, y := pixel(vp.ToScreen(p.Position()))
		r := int(math.Round(p.Radius() * scale))
		c.FillCircle(x, y, r, body)
	}

	head := math.Max(2, render.ArrowHead*scale)
	if opts.Vectors {
		vec := string(opts.Theme.Vector)
		for _, p := range s.Particles() {
			start := vp.ToScreen(p.Position())
			drawArrow(c, render.ArrowWith(start, p.Velocity(), render.ArrowLength*scale, head), vec)
		}
	}
	if opts.Forces {
		force := render.Hex(render.Force)
		for _, p := range s.Particles() {
			start := vp.ToScreen(p.Position())
			drawArrow(c, render.ArrowWith(start, s.Acceleration(p), render.ArrowLength*scale, head), force)
		}
	}
}

func drawArrow(c *Canvas, a render.ArrowShape, hex string) {
	sx, sy := pixel(a.Start)
	tx, ty := pixel(a.Tip)
	c.DrawLineColor(sx, sy, tx, ty, hex)
	for _, h := range []physics.Vector2D{a.Left, a.Right} {
		hx, hy := pixel(h)
		c.DrawLineColor(tx, ty, hx, hy, hex)
	}
}

// pixel rounds a screen point, saturating non-finite or huge coordinates
// off-canvas.
func pixel(v physics.Vector2D) (int, int) {
	return clampPixel(v.X), clampPixel(v.Y)
}

func clampPixel(f float64) int {
	const limit = 1 << 14
	switch {
	case math.IsNaN(f):
		return -1
	case f > limit:
		return limit
	case f < -limit:
		return -limit
	}
	return int(math.Floor(f))
}
