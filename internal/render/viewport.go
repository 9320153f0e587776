package render

import "github.com/san-kum/orbitsim/internal/physics"

// Viewport maps a world rectangle onto a screen of Width x Height pixels
// (or cells). Screen y grows downward and so does world y.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
	Width      float64
	Height     float64
}

// NewViewport shows the square [-extent, extent]² centred on the origin.
func NewViewport(extent float64, width, height int) Viewport {
	return Viewport{
		XMin: -extent, XMax: extent,
		YMin: -extent, YMax: extent,
		Width: float64(width), Height: float64(height),
	}
}

// Coefficients returns the linear map screen = a*world + b for each axis.
func (v Viewport) Coefficients() (xa, xb, ya, yb float64) {
	xa = v.Width / (v.XMax - v.XMin)
	xb = (v.Width - xa*(v.XMin+v.XMax)) / 2
	ya = v.Height / (v.YMax - v.YMin)
	yb = (v.Height - ya*(v.YMin+v.YMax)) / 2
	return xa, xb, ya, yb
}

func (v Viewport) ToScreen(p physics.Vector2D) physics.Vector2D {
	xa, xb, ya, yb := v.Coefficients()
	return p.Mul(physics.Vector2D{X: xa, Y: ya}).Add(physics.Vector2D{X: xb, Y: yb})
}

// Contains reports whether a screen point lies inside the viewport.
func (v Viewport) Contains(s physics.Vector2D) bool {
	return s.X >= 0 && s.X < v.Width && s.Y >= 0 && s.Y < v.Height
}

// Zoom scales the visible world about its centre. factor > 1 zooms in.
func (v Viewport) Zoom(factor float64) Viewport {
	if factor <= 0 {
		return v
	}
	cx, cy := (v.XMin+v.XMax)/2, (v.YMin+v.YMax)/2
	hw, hh := (v.XMax-v.XMin)/2/factor, (v.YMax-v.YMin)/2/factor
	v.XMin, v.XMax = cx-hw, cx+hw
	v.YMin, v.YMax = cy-hh, cy+hh
	return v
}

// Resize keeps the world rectangle and changes the screen size.
func (v Viewport) Resize(width, height int) Viewport {
	v.Width, v.Height = float64(width), float64(height)
	return v
}
