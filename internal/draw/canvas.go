package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// cell is one rendered terminal character.
type cell struct {
	ch    rune
	color Color
}

// unknownCell marks a cell whose terminal contents are unknown, so the next
// Render always rewrites it.
var unknownCell = cell{ch: -1}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Shapes are drawn in logical coordinates and scaled to terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	prev           []cell  // What the terminal currently shows, per cell

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the canvas in a larger terminal.
	offsetCol int
	offsetRow int
}

// NewScaledCanvas creates a canvas that maps a logicalWidth x logicalHeight
// coordinate space onto termWidth x termHeight terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
// The whole area is redrawn on the next Render.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.prev = make([]cell, termHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	c.ForceRedraw()
}

// SetOffset sets the column and row offset for centering the canvas.
// The canvas starts at terminal position (col+1, row+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render rewrite every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = unknownCell
	}
}

// MarkTextDirty records that text was written over width cells starting at
// the 1-based canvas position (col, row), so those cells are repainted on
// the next Render.
func (c *Canvas) MarkTextDirty(col, row, width int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for x := max(col-1, 0); x < min(col-1+width, c.termWidth); x++ {
		c.prev[r*c.termWidth+x] = unknownCell
	}
}

func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = color
	}
}

// pixelRect converts a logical rectangle to an inclusive pixel range.
// It always covers at least one pixel so tiny objects stay visible.
func (c *Canvas) pixelRect(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(x * c.scaleX))
	y0 = int(math.Floor(y * c.scaleY))
	x1 = max(int(math.Ceil((x+w)*c.scaleX))-1, x0)
	y1 = max(int(math.Ceil((y+h)*c.scaleY))-1, y0)
	return x0, y0, x1, y1
}

// FillRect fills a logical rectangle with top-left (x, y).
func (c *Canvas) FillRect(x, y, w, h float64, color Color) {
	x0, y0, x1, y1 := c.pixelRect(x, y, w, h)
	for py := max(y0, 0); py <= min(y1, c.subPixelHeight-1); py++ {
		for px := max(x0, 0); px <= min(x1, c.termWidth-1); px++ {
			c.pixels[py*c.termWidth+px] = color
		}
	}
}

// StrokeRect draws the one-pixel outline of a logical rectangle.
func (c *Canvas) StrokeRect(x, y, w, h float64, color Color) {
	x0, y0, x1, y1 := c.pixelRect(x, y, w, h)
	for px := x0; px <= x1; px++ {
		c.setPixel(px, y0, color)
		c.setPixel(px, y1, color)
	}
	for py := y0; py <= y1; py++ {
		c.setPixel(x0, py, color)
		c.setPixel(x1, py, color)
	}
}

// DrawLine draws a line between two logical points using Bresenham's algorithm.
func (c *Canvas) DrawLine(ax, ay, bx, by float64, color Color) {
	x1 := int(math.Round(ax * c.scaleX))
	y1 := int(math.Round(ay * c.scaleY))
	x2 := int(math.Round(bx * c.scaleX))
	y2 := int(math.Round(by * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1, color)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// cellAt resolves the character and color shown for a terminal cell.
func (c *Canvas) cellAt(col, row int) cell {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	switch {
	case top != ColorNone && bottom != ColorNone:
		return cell{ch: BlockFull, color: top}
	case top != ColorNone:
		return cell{ch: BlockUpperHalf, color: top}
	case bottom != ColorNone:
		return cell{ch: BlockLowerHalf, color: bottom}
	default:
		return cell{ch: ' '}
	}
}

// Render writes the cells that changed since the previous Render.
// Positions are canvas-relative; cw applies the centering offset.
func (c *Canvas) Render(cw *ChunkWriter) {
	current := ColorNone
	for row := range c.termHeight {
		runStart := -1
		for col := range c.termWidth {
			i := row*c.termWidth + col
			next := c.cellAt(col, row)
			if next == c.prev[i] {
				runStart = -1
				continue
			}
			c.prev[i] = next
			if runStart < 0 {
				cw.MoveCursor(col+1, row+1)
				runStart = col
			}
			if next.ch != ' ' && next.color != current {
				cw.WriteString(next.color.Code())
				current = next.color
			}
			cw.WriteRune(next.ch)
		}
	}
	if current != ColorNone {
		cw.WriteString(ColorReset)
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	buf.WriteString(ColorDim.Code())
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}
	buf.WriteString(ColorReset)
	io.WriteString(w, buf.String())
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 { return c.logicalWidth }

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 { return c.logicalHeight }

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// LogicalToTerminal converts logical coordinates to a 1-based canvas position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogicalX converts a 1-based absolute terminal column, as reported
// by mouse events, to the logical x at the center of that column.
func (c *Canvas) TerminalToLogicalX(col int) float64 {
	local := col - 1 - c.offsetCol
	local = max(0, min(local, c.termWidth-1))
	return (float64(local) + 0.5) / c.scaleX
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
