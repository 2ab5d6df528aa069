package tui

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// newTestCanvas maps an 800x600 logical surface onto 80x24 cells:
// one cell is 10x25 logical pixels.
func newTestCanvas() *Canvas {
	return NewCanvas(core.NewScreen(80, 24), 800, 600)
}

func TestCanvasFillRect(t *testing.T) {
	c := newTestCanvas()
	c.Fill(core.ColorSkyBlue)
	c.FillRect(core.NewRect(375, 470, 50, 80), core.ColorRed)

	// Cell centers at x = 5, 15, ...; y = 12.5, 37.5, ...
	// Columns 37..41 (375..425) and rows 19..21 (470..550)
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			want := core.ColorSkyBlue
			if x >= 37 && x <= 41 && y >= 19 && y <= 21 {
				want = core.ColorRed
			}
			if got := c.Screen().GetCell(x, y).Bg; got != want {
				t.Fatalf("cell (%d, %d) bg = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestCanvasFillRectSmallerThanCell(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(core.NewRect(401, 101, 3, 3), core.ColorRed)

	if got := c.Screen().GetCell(40, 4).Bg; got != core.ColorRed {
		t.Errorf("tiny rect should paint the cell under its center, got %v", got)
	}

	c.FillRect(core.NewRect(0, 0, 0, 100), core.ColorWhite)
	if got := c.Screen().GetCell(0, 0).Bg; got == core.ColorWhite {
		t.Error("empty rect should draw nothing")
	}
}

func TestCanvasFillEllipse(t *testing.T) {
	c := newTestCanvas()
	c.FillEllipse(core.NewRect(300, 200, 200, 200), core.ColorShadow)

	if got := c.Screen().GetCell(40, 12).Bg; got != core.ColorShadow {
		t.Errorf("ellipse center cell bg = %v, expected shadow", got)
	}
	// Corner of the bounding box is outside the ellipse
	if got := c.Screen().GetCell(30, 8).Bg; got == core.ColorShadow {
		t.Error("bounding box corner should not be painted")
	}
}

func TestCanvasFillPolygon(t *testing.T) {
	c := newTestCanvas()
	c.Fill(core.ColorSkyBlue)
	c.FillPolygon([]core.Vec2{
		core.V(80, 600), core.V(720, 600), core.V(480, 0), core.V(320, 0),
	}, core.ColorRoad)

	tests := []struct {
		x, y int
		want core.Color
	}{
		{40, 0, core.ColorRoad},    // top center
		{40, 23, core.ColorRoad},   // bottom center
		{10, 23, core.ColorRoad},   // just inside the left edge
		{5, 23, core.ColorSkyBlue}, // left of the road
		{0, 0, core.ColorSkyBlue},  // top left corner
		{50, 0, core.ColorSkyBlue}, // right of the narrow top
	}
	for _, tt := range tests {
		if got := c.Screen().GetCell(tt.x, tt.y).Bg; got != tt.want {
			t.Errorf("cell (%d, %d) bg = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCanvasLine(t *testing.T) {
	c := newTestCanvas()
	c.FillRect(core.NewRect(0, 175, 800, 25), core.ColorMenuBG)
	c.Line(core.V(200, 180), core.V(600, 180), 2, core.ColorMenuRule)

	for x := 20; x <= 60; x++ {
		cell := c.Screen().GetCell(x, 7)
		if cell.Rune != '─' || cell.Fg != core.ColorMenuRule {
			t.Fatalf("cell (%d, 7) = %+v, expected a rule glyph", x, cell)
		}
		if cell.Bg != core.ColorMenuBG {
			t.Fatalf("Line should keep the background, got %v", cell.Bg)
		}
	}

	c.Line(core.V(400, 0), core.V(400, 600), 2, core.ColorWhite)
	if got := c.Screen().Get(40, 12); got != '│' {
		t.Errorf("vertical line glyph = %q, expected '│'", got)
	}
}

func TestLineGlyph(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   rune
	}{
		{10, 0, '─'},
		{0, 10, '│'},
		{1, 1, '╲'},
		{-1, 1, '╱'},
		{1, -1, '╱'},
	}
	for _, tt := range tests {
		if got := lineGlyph(tt.dx, tt.dy); got != tt.want {
			t.Errorf("lineGlyph(%g, %g) = %q, expected %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestCanvasText(t *testing.T) {
	c := newTestCanvas()

	w, h := c.MeasureText("Score: 12")
	if w != 90 || h != 25 {
		t.Errorf("MeasureText() = %dx%d, expected 90x25", w, h)
	}

	c.DrawText(600, 10, "Score: 12", core.ColorBlack)
	if got := c.Screen().Row(0)[60:69]; got != "Score: 12" {
		t.Errorf("row 0 = %q, expected the score at column 60", got)
	}

	core.DrawTextCentered(c, 400, 300, "Play", core.ColorWhite)
	row := c.Screen().Row(11)
	if got := row[38:42]; got != "Play" {
		t.Errorf("centered text row = %q", row)
	}
}

func TestCanvasCoordinates(t *testing.T) {
	c := newTestCanvas()

	if x, y := c.ToCell(405, 130); x != 40 || y != 5 {
		t.Errorf("ToCell(405, 130) = (%d, %d), expected (40, 5)", x, y)
	}
	if x, y := c.ToLogical(40, 5); x != 405 || y != 137 {
		t.Errorf("ToLogical(40, 5) = (%d, %d), expected (405, 137)", x, y)
	}
	if w, h := c.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %dx%d, expected 800x600", w, h)
	}
}

func TestCanvasZeroScreen(t *testing.T) {
	c := NewCanvas(core.NewScreen(0, 0), 800, 600)

	// Nothing to draw on; none of these may panic
	c.Fill(core.ColorRed)
	c.FillRect(core.NewRect(0, 0, 10, 10), core.ColorRed)
	c.FillEllipse(core.NewRect(0, 0, 10, 10), core.ColorRed)
	c.FillPolygon([]core.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}, core.ColorRed)
	c.Line(core.V(0, 0), core.V(10, 10), 2, core.ColorRed)
	c.DrawText(0, 0, "x", core.ColorRed)
}
