package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells. Each cell carries one foreground
// colour; the last coloured write to a cell wins.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid and clears it.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.Colors = make([][]string, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
	}
	c.Clear()
}

// SubSize is the canvas size in sub-pixels.
func (c *Canvas) SubSize() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, mask rune, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, 0, false
	}
	return row, col, rune(pixelMap[y%4][x%2]), true
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if row, col, mask, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= mask
	}
}

// SetColor sets a pixel and recolours its cell. hex is "#rrggbb".
func (c *Canvas) SetColor(x, y int, hex string) {
	if row, col, mask, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= mask
		c.Colors[row][col] = hex
	}
}

// Pixel reports whether (x, y) is lit and the colour of its cell.
func (c *Canvas) Pixel(x, y int) (bool, string) {
	row, col, mask, ok := c.cell(x, y)
	if !ok {
		return false, ""
	}
	return c.Grid[row][col]&mask != 0, c.Colors[row][col]
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	row, col, mask, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &= ^mask
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.DrawLineColor(x0, y0, x1, y1, "")
}

// DrawLineColor is DrawLine with a colour. An empty hex leaves cell colours
// untouched.
func (c *Canvas) DrawLineColor(x0, y0, x1, y1 int, hex string) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.plot(x0, y0, hex)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills a disc of radius r sub-pixels centred on (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r int, hex string) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.plot(cx+dx, cy+dy, hex)
			}
		}
	}
}

func (c *Canvas) plot(x, y int, hex string) {
	if hex == "" {
		c.Set(x, y)
		return
	}
	c.SetColor(x, y, hex)
}

// String renders the canvas without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render renders the canvas with each run of same-coloured cells styled by
// lipgloss.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		colors := c.Colors[i]
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && colors[j] == colors[start] {
				continue
			}
			run := string(row[start:j])
			if colors[start] == "" {
				b.WriteString(run)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[start])).Render(run))
			}
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
