package physics

import (
	"fmt"
	"math"
)

// Vector2D is a 2D vector value. Methods on the value return new vectors;
// the *InPlace methods mutate the receiver and return it for chaining.
//
// Div and Pow are not guarded: dividing by zero yields ±Inf or NaN as
// IEEE 754 prescribes. Normalize and Axis are guarded.
type Vector2D struct {
	X float64
	Y float64
}

// Zero returns the zero vector.
func Zero() Vector2D { return Vector2D{} }

func (v Vector2D) Add(o Vector2D) Vector2D { return Vector2D{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vector2D) Sub(o Vector2D) Vector2D { return Vector2D{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul multiplies component-wise.
func (v Vector2D) Mul(o Vector2D) Vector2D { return Vector2D{X: v.X * o.X, Y: v.Y * o.Y} }

func (v Vector2D) Scale(s float64) Vector2D     { return Vector2D{X: v.X * s, Y: v.Y * s} }
func (v Vector2D) Div(s float64) Vector2D       { return Vector2D{X: v.X / s, Y: v.Y / s} }
func (v Vector2D) AddScalar(s float64) Vector2D { return Vector2D{X: v.X + s, Y: v.Y + s} }
func (v Vector2D) SubScalar(s float64) Vector2D { return Vector2D{X: v.X - s, Y: v.Y - s} }

// Pow raises each component to p.
func (v Vector2D) Pow(p float64) Vector2D {
	return Vector2D{X: math.Pow(v.X, p), Y: math.Pow(v.Y, p)}
}

func (v Vector2D) Neg() Vector2D  { return Vector2D{X: -v.X, Y: -v.Y} }
func (v Vector2D) Copy() Vector2D { return Vector2D{X: v.X, Y: v.Y} }

func (v Vector2D) Equal(o Vector2D) bool { return v.X == o.X && v.Y == o.Y }

func (v Vector2D) Dot(o Vector2D) float64 { return v.X*o.X + v.Y*o.Y }

// Magnitude returns the Euclidean length.
func (v Vector2D) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector along v, or v itself when v has zero
// length.
func (v Vector2D) Normalize() Vector2D {
	if m := v.Magnitude(); m != 0 {
		return v.Div(m)
	}
	return v
}

// Axis returns the unit vector pointing from v toward o. Coincident points
// give the zero vector.
func (v Vector2D) Axis(o Vector2D) Vector2D {
	d := v.Sub(o)
	if m := d.Magnitude(); m != 0 {
		return d.Neg().Div(m)
	}
	return d.Neg()
}

func (v Vector2D) XY() (float64, float64) { return v.X, v.Y }

// IsFinite reports whether neither component is NaN or Inf.
func (v Vector2D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func (v Vector2D) String() string {
	return fmt.Sprintf("Vector2D(x=%g, y=%g)", v.X, v.Y)
}

func (v *Vector2D) AddInPlace(o Vector2D) *Vector2D {
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v *Vector2D) SubInPlace(o Vector2D) *Vector2D {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

func (v *Vector2D) MulInPlace(o Vector2D) *Vector2D {
	v.X *= o.X
	v.Y *= o.Y
	return v
}

func (v *Vector2D) ScaleInPlace(s float64) *Vector2D {
	v.X *= s
	v.Y *= s
	return v
}

func (v *Vector2D) DivInPlace(s float64) *Vector2D {
	v.X /= s
	v.Y /= s
	return v
}

func (v *Vector2D) AddScalarInPlace(s float64) *Vector2D {
	v.X += s
	v.Y += s
	return v
}

func (v *Vector2D) SubScalarInPlace(s float64) *Vector2D {
	v.X -= s
	v.Y -= s
	return v
}

func (v *Vector2D) PowInPlace(p float64) *Vector2D {
	v.X = math.Pow(v.X, p)
	v.Y = math.Pow(v.Y, p)
	return v
}
