// Package export writes simulation results as JSON, CSV or SVG.
package export
