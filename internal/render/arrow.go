package render

import (
	"math"

	"github.com/san-kum/orbitsim/internal/physics"
)

const (
	ArrowLength    = 100.0
	ArrowHead      = 10.0
	ArrowHeadAngle = math.Pi / 6
)

// ArrowShape is a shaft from Start to Tip with a triangular head
// Left-Tip-Right.
type ArrowShape struct {
	Start, Tip  physics.Vector2D
	Left, Right physics.Vector2D
}

// Points returns the head triangle in drawing order.
func (a ArrowShape) Points() [3]physics.Vector2D {
	return [3]physics.Vector2D{a.Left, a.Tip, a.Right}
}

// Arrow draws v from start in screen units, scaled by ArrowLength.
func Arrow(start, v physics.Vector2D) ArrowShape {
	return ArrowWith(start, v, ArrowLength, ArrowHead)
}

// ArrowWith is Arrow with an explicit shaft scale and head size. A zero v
// gives a degenerate arrow pointing along +x.
func ArrowWith(start, v physics.Vector2D, length, head float64) ArrowShape {
	dir := v.Normalize()
	angle := math.Atan2(dir.Y, dir.X)

	tip := start.Add(v.Scale(length))
	left := physics.Vector2D{X: math.Cos(angle - ArrowHeadAngle), Y: math.Sin(angle - ArrowHeadAngle)}.Scale(head)
	right := physics.Vector2D{X: math.Cos(angle + ArrowHeadAngle), Y: math.Sin(angle + ArrowHeadAngle)}.Scale(head)

	return ArrowShape{
		Start: start,
		Tip:   tip,
		Left:  tip.Sub(left),
		Right: tip.Sub(right),
	}
}
