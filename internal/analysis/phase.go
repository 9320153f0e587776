package analysis

import (
	"strings"

	"github.com/san-kum/orbitsim/internal/sim"
)

// PhasePortrait2D holds a 2D trace, such as one body's orbit.
type PhasePortrait2D struct {
	Points []struct{ X, Y float64 }
}

// OrbitPortrait traces one body's position across a run's frames.
func OrbitPortrait(r *sim.Result, body int) (*PhasePortrait2D, error) {
	return Portrait(r, body, "x", "y")
}

// Portrait pairs two components of one body, e.g. "x" against "vx".
func Portrait(r *sim.Result, body int, xComp, yComp string) (*PhasePortrait2D, error) {
	xs, err := r.Series(body, xComp)
	if err != nil {
		return nil, err
	}
	ys, err := r.Series(body, yComp)
	if err != nil {
		return nil, err
	}

	portrait := &PhasePortrait2D{
		Points: make([]struct{ X, Y float64 }, len(xs)),
	}
	for i := range xs {
		portrait.Points[i].X = xs[i]
		portrait.Points[i].Y = ys[i]
	}
	return portrait, nil
}

// PhasePortraitToASCII converts phase portrait to ASCII art
func PhasePortraitToASCII(portrait *PhasePortrait2D, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 {
		return ""
	}

	// Find bounds
	minX, maxX := portrait.Points[0].X, portrait.Points[0].X
	minY, maxY := portrait.Points[0].Y, portrait.Points[0].Y

	for _, p := range portrait.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	// Create canvas
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Plot points
	for _, p := range portrait.Points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// Draw axes if they cross the visible area
	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	// Convert to string
	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// PoincareSection records points when a trajectory crosses a plane
type PoincareSection struct {
	Points []struct{ X, Y float64 }
}

// Crossings records a body's (x, vx) each time it crosses y = 0 going
// upward, interpolated between the bracketing frames.
func Crossings(r *sim.Result, body int) (*PoincareSection, error) {
	xs, err := r.Series(body, "x")
	if err != nil {
		return nil, err
	}
	ys, _ := r.Series(body, "y")
	vxs, _ := r.Series(body, "vx")

	section := &PoincareSection{
		Points: make([]struct{ X, Y float64 }, 0),
	}

	for i := 1; i < len(ys); i++ {
		prev, curr := ys[i-1], ys[i]
		if !(prev < 0 && curr >= 0) {
			continue
		}
		frac := -prev / (curr - prev)
		section.Points = append(section.Points, struct{ X, Y float64 }{
			X: xs[i-1] + frac*(xs[i]-xs[i-1]),
			Y: vxs[i-1] + frac*(vxs[i]-vxs[i-1]),
		})
	}

	return section, nil
}

// PoincareSectionToASCII converts section data to ASCII plot
func PoincareSectionToASCII(section *PoincareSection, width, height int) string {
	if section == nil || len(section.Points) == 0 {
		return "No crossings detected"
	}

	portrait := &PhasePortrait2D{Points: section.Points}
	return PhasePortraitToASCII(portrait, width, height)
}
