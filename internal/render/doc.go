// Package render holds the geometry and colours shared by the terminal and
// window front ends: the world-to-screen [Viewport], velocity [Arrow]
// shapes, and the fading trail palette.
package render
