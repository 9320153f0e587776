// Package gui draws a running scene in a raylib window.
//
// Each frame advances the simulator one tick, clears to a deep blue
// background, and draws every particle as a white disc of its radius with a
// green velocity arrow and a fading dot trail. The window title shows the
// frame rate, refreshed once per second.
package gui
