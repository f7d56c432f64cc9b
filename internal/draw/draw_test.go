package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestFillRectScales(t *testing.T) {
	// 10x5 cells = 10x10 pixels for a 100x100 logical space.
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillRect(0, 0, 50, 50, ColorRed)

	for y := range 10 {
		for x := range 10 {
			got := c.pixels[y*10+x]
			want := ColorNone
			if x < 5 && y < 5 {
				want = ColorRed
			}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillRectClipsOffCanvas(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.FillRect(-10, -10, 100, 100, ColorCyan)
	for i, p := range c.pixels {
		if p != ColorCyan {
			t.Fatalf("pixel %d not filled", i)
		}
	}
}

func TestTinyRectStillVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 1000, 1000)
	c.FillRect(500, 500, 1, 1, ColorYellow)
	n := 0
	for _, p := range c.pixels {
		if p == ColorYellow {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("filled %d pixels, want 1", n)
	}
}

func TestStrokeRectLeavesInteriorEmpty(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.StrokeRect(2, 2, 5, 5, ColorWhite)
	if c.pixels[2*10+2] != ColorWhite || c.pixels[6*10+6] != ColorWhite {
		t.Fatal("corners not drawn")
	}
	if c.pixels[4*10+4] != ColorNone {
		t.Fatal("interior should be empty")
	}
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)

	c.FillRect(0, 0, 1, 2, ColorRed)
	c.Render(cw)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	first := out.String()
	if !strings.ContainsRune(first, BlockFull) {
		t.Fatalf("first frame missing full block: %q", first)
	}

	out.Reset()
	c.Render(cw)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", out.String())
	}

	c.Clear()
	c.Render(cw)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\033[1;1H " {
		t.Fatalf("clearing one cell wrote %q", got)
	}

	out.Reset()
	c.ForceRedraw()
	c.Render(cw)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), " ") != 8 {
		t.Fatalf("forced redraw should rewrite all 8 cells: %q", out.String())
	}
}

func TestHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.FillRect(0, 0, 1, 1, ColorRed)
	c.FillRect(1, 1, 1, 1, ColorCyan)
	if got := c.cellAt(0, 0); got.ch != BlockUpperHalf || got.color != ColorRed {
		t.Fatalf("cell 0 = %+v", got)
	}
	if got := c.cellAt(1, 0); got.ch != BlockLowerHalf || got.color != ColorCyan {
		t.Fatalf("cell 1 = %+v", got)
	}
}

func TestTerminalToLogicalX(t *testing.T) {
	c := NewScaledCanvas(36, 12, 360, 240)
	c.SetOffset(5, 0)

	if got := c.TerminalToLogicalX(6); math.Abs(got-5) > 1e-9 {
		t.Fatalf("first column -> %v, want 5", got)
	}
	if got := c.TerminalToLogicalX(41); math.Abs(got-355) > 1e-9 {
		t.Fatalf("last column -> %v, want 355", got)
	}
	if got := c.TerminalToLogicalX(1); math.Abs(got-5) > 1e-9 {
		t.Fatalf("left margin should clamp, got %v", got)
	}
	if got := c.TerminalToLogicalX(200); math.Abs(got-355) > 1e-9 {
		t.Fatalf("right margin should clamp, got %v", got)
	}
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(36, 12, 360, 240)
	col, row := c.LogicalToTerminal(180, 120)
	if col != 19 || row != 7 {
		t.Fatalf("center -> (%d,%d), want (19,7)", col, row)
	}
}

func TestChunkWriterOffsetAndFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "hi")
	if cw.Buffered() == 0 {
		t.Fatal("nothing buffered")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\033[3;4Hhi" {
		t.Fatalf("got %q", got)
	}

	out.Reset()
	big := strings.Repeat("x", maxChunkSize*3+7)
	cw.WriteString(big)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != big {
		t.Fatal("chunked output differs from input")
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("Score 3"); got != 7 {
		t.Fatalf("ascii width = %d", got)
	}
	if got := TextWidth("+1 🎁"); got != 5 {
		t.Fatalf("emoji width = %d", got)
	}
	if got := TextWidth("☔ 2"); got != 4 {
		t.Fatalf("misc symbol width = %d", got)
	}
	if got := TextWidth("礼物"); got != 4 {
		t.Fatalf("wide CJK width = %d", got)
	}
}
