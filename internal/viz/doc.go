// Package viz renders running scenes in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view of one simulator with an energy plot and stats
//   - [Menu]: scenario picker that hands over to a [Model]
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	.     - Single tick while paused
//	R     - Reset to initial state
//	[ ]   - Halve/double ticks per frame
//	+ -   - Zoom
//	V L   - Toggle velocity vectors / trails
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// The G key records the canvas as an animated GIF, written to
// orbitsim.gif in the current directory when recording stops.
package viz
