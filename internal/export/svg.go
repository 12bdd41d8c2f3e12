// Package export renders run results as standalone SVG documents for use
// outside the terminal.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/racketlab/internal/sim"
	"github.com/san-kum/racketlab/internal/table"
)

const (
	svgBackground = "#0a0a0a"
	svgPointColor = "#00ccff"
	svgTopColor   = "#ffcc00"
	svgAxisColor  = "#444466"
	svgTextColor  = "#888899"
)

// ScatterSVG plots (x, y) points with an optional highlighted overlay set,
// axes and labels included.
func ScatterSVG(xs, ys, hx, hy []float64, xLabel, yLabel string, width, height int) string {
	if len(xs) == 0 {
		return ""
	}

	const margin = 40.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin

	minX, maxX := dataBounds(xs, hx)
	minY, maxY := dataBounds(ys, hy)
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	toX := func(v float64) float64 { return margin + (v-minX)/rangeX*plotW }
	toY := func(v float64) float64 { return margin + plotH - (v-minY)/rangeY*plotH }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground))

	// Axes
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>
`, margin, margin+plotH, margin+plotW, margin+plotH, svgAxisColor))
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>
`, margin, margin, margin, margin+plotH, svgAxisColor))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="12" text-anchor="middle">%s</text>
`, margin+plotW/2, float64(height)-8, svgTextColor, xLabel))
	sb.WriteString(fmt.Sprintf(`<text x="12" y="%.1f" fill="%s" font-size="12" text-anchor="middle" transform="rotate(-90 12 %.1f)">%s</text>
`, margin+plotH/2, svgTextColor, margin+plotH/2, yLabel))

	sb.WriteString(fmt.Sprintf(`<g fill="%s" fill-opacity="0.5">
`, svgPointColor))
	for i := range xs {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1.5"/>
`, toX(xs[i]), toY(ys[i])))
	}
	sb.WriteString("</g>\n")

	if len(hx) > 0 {
		sb.WriteString(fmt.Sprintf(`<g fill="%s">
`, svgTopColor))
		for i := range hx {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3.5"/>
`, toX(hx[i]), toY(hy[i])))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// HistogramSVG renders bin counts as a bar chart.
func HistogramSVG(counts []float64, label string, width, height int) string {
	if len(counts) == 0 {
		return ""
	}

	const margin = 40.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin

	maxCount := counts[0]
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, svgBackground, svgPointColor))

	barW := plotW / float64(len(counts))
	for i, c := range counts {
		h := c / maxCount * plotH
		x := margin + float64(i)*barW
		y := margin + plotH - h
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, x, y, barW*0.9, h))
	}

	sb.WriteString(fmt.Sprintf(`</g>
<text x="%.1f" y="%.1f" fill="%s" font-size="12" text-anchor="middle">%s</text>
</svg>`, margin+plotW/2, float64(height)-8, svgTextColor, label))
	return sb.String()
}

// WriteDashboard saves the main result view (exit speed vs shock proxy with
// the top designs highlighted) to an SVG file.
func WriteDashboard(path string, results, top *table.Table) error {
	if err := results.Require(sim.ColExitSpeed, sim.ColShockProxy); err != nil {
		return err
	}

	var hx, hy []float64
	if top != nil && top.Has(sim.ColExitSpeed) && top.Has(sim.ColShockProxy) {
		hx = top.MustColumn(sim.ColExitSpeed)
		hy = top.MustColumn(sim.ColShockProxy)
	}

	svg := ScatterSVG(
		results.MustColumn(sim.ColExitSpeed),
		results.MustColumn(sim.ColShockProxy),
		hx, hy,
		"exit speed (m/s)", "shock proxy",
		900, 600,
	)
	return os.WriteFile(path, []byte(svg), 0644)
}

func dataBounds(base, extra []float64) (float64, float64) {
	lo, hi := base[0], base[0]
	for _, v := range base {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for _, v := range extra {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
