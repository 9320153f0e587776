package render

import "fmt"

// FPSCounter counts frames and reports the count once per second of wall
// time, like a window title refresh.
type FPSCounter struct {
	previous float64
	frames   int
	last     int
}

// Tick records a frame at nowMillis. It returns true when a second has
// passed since the last report; Last then holds the frames counted in
// between and the counter restarts.
func (f *FPSCounter) Tick(nowMillis float64) bool {
	if nowMillis-f.previous > 1000.0 {
		f.last = f.frames
		f.frames = 0
		f.previous = nowMillis
		return true
	}
	f.frames++
	return false
}

func (f *FPSCounter) Last() int { return f.last }

// Title formats a window caption with the last reported rate.
func (f *FPSCounter) Title(base string) string {
	return fmt.Sprintf("%s | FPS: %d", base, f.last)
}
