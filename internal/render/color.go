package render

import "github.com/lucasb-eyer/go-colorful"

var (
	Background = colorful.Color{R: 30.0 / 255, G: 30.0 / 255, B: 100.0 / 255}
	Body       = colorful.Color{R: 1, G: 1, B: 1}
	Velocity   = colorful.Color{R: 0, G: 1, B: 0}
	Force      = colorful.Color{R: 0, G: 0, B: 1}
	TrailHead  = colorful.Color{R: 1, G: 0, B: 0}
	TrailTail  = colorful.Color{R: 1, G: 1, B: 1}
)

// TrailAlpha is the brightness of trail entry i of n, counting from the
// newest. It rises from 255/n to 255.
func TrailAlpha(i, n int) uint8 {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return 255
	}
	return uint8(255 * (i + 1) / n)
}

// Fade blends from toward to in RGB space. t is clamped to [0, 1].
func Fade(from, to colorful.Color, t float64) colorful.Color {
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return from.BlendRgb(to, t)
}

// TrailColor colours trail entry i of n, newest first.
func TrailColor(i, n int) colorful.Color {
	return Fade(TrailHead, TrailTail, float64(TrailAlpha(i, n))/255)
}

// Hex formats c for lipgloss and other "#rrggbb" consumers.
func Hex(c colorful.Color) string {
	return c.Clamped().Hex()
}

// RGBA8 returns c as 8-bit channels with the given alpha.
func RGBA8(c colorful.Color, alpha uint8) (r, g, b, a uint8) {
	r, g, b = c.Clamped().RGB255()
	return r, g, b, alpha
}
