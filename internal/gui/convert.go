package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/orbitsim/internal/physics"
)

func vec(v physics.Vector2D) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func color(c colorful.Color, alpha uint8) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, alpha)
}
