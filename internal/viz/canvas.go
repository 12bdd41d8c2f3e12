package viz

import "strings"

// Braille patterns pack 2x4 dots per character cell, unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the dot at sub-pixel coordinates (x, y). The canvas is
// (Width*2) x (Height*4) sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// ScatterPlot renders (x, y) data points onto a Braille canvas, scaled to
// the data bounds. highlight points are drawn after the base layer so dense
// regions cannot swallow them.
func ScatterPlot(xs, ys []float64, hx, hy []float64, width, height int) string {
	canvas := NewCanvas(width, height)

	minX, maxX := bounds(append(append([]float64{}, xs...), hx...))
	minY, maxY := bounds(append(append([]float64{}, ys...), hy...))

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	plot := func(px, py []float64) {
		for i := range px {
			x := int(float64(width*2-1) * (px[i] - minX) / rangeX)
			y := int(float64(height*4-1) * (py[i] - minY) / rangeY)
			canvas.Set(x, height*4-1-y)
		}
	}
	plot(xs, ys)
	plot(hx, hy)

	return canvas.String()
}

func bounds(vals []float64) (float64, float64) {
	if len(vals) == 0 {
		return 0, 1
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
