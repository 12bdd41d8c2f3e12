// Package viz renders the terminal dashboard for simulation results:
// asciigraph histograms of the output distributions, a Braille-canvas
// scatter of the design space, and lipgloss-styled report panels.
//
// Everything here consumes result tables read-only.
package viz
