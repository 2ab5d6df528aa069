package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Canvas rasterizes the logical drawing surface onto a terminal cell
// buffer. Every cell stands for a block of logical pixels and is painted
// when the shape covers the block's center.
type Canvas struct {
	screen *core.Screen
	lw, lh int // Logical size
}

// NewCanvas creates a canvas presenting a lw×lh logical surface on screen.
func NewCanvas(screen *core.Screen, lw, lh int) *Canvas {
	return &Canvas{screen: screen, lw: lw, lh: lh}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen { return c.screen }

// Size returns the logical size.
func (c *Canvas) Size() (int, int) { return c.lw, c.lh }

// cellSize returns the logical size of one cell.
func (c *Canvas) cellSize() (float64, float64) {
	cols, rows := c.screen.Width(), c.screen.Height()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return float64(c.lw) / float64(cols), float64(c.lh) / float64(rows)
}

// cellCenter returns the logical position of the center of cell (x, y).
func (c *Canvas) cellCenter(x, y int) (float64, float64) {
	cw, ch := c.cellSize()
	return (float64(x) + 0.5) * cw, (float64(y) + 0.5) * ch
}

// ToCell maps a logical point to the cell containing it.
func (c *Canvas) ToCell(lx, ly float64) (int, int) {
	cw, ch := c.cellSize()
	if cw == 0 || ch == 0 {
		return 0, 0
	}
	return int(math.Floor(lx / cw)), int(math.Floor(ly / ch))
}

// ToLogical maps a cell to the logical position of its center.
func (c *Canvas) ToLogical(x, y int) (int, int) {
	lx, ly := c.cellCenter(x, y)
	return int(lx), int(ly)
}

// cellRange returns the cells whose centers may lie in [x0, x1]×[y0, y1],
// clipped to the screen.
func (c *Canvas) cellRange(x0, y0, x1, y1 float64) (cx0, cy0, cx1, cy1 int) {
	cx0, cy0 = c.ToCell(x0, y0)
	cx1, cy1 = c.ToCell(x1, y1)
	cx0 = core.Clamp(cx0, 0, c.screen.Width()-1)
	cx1 = core.Clamp(cx1, 0, c.screen.Width()-1)
	cy0 = core.Clamp(cy0, 0, c.screen.Height()-1)
	cy1 = core.Clamp(cy1, 0, c.screen.Height()-1)
	return cx0, cy0, cx1, cy1
}

// Fill paints the whole surface.
func (c *Canvas) Fill(col core.Color) {
	c.screen.Fill(col)
}

// FillRect paints the cells whose centers lie inside r. A non-empty
// rectangle smaller than a cell still paints the cell under its center.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() || c.screen.Width() == 0 || c.screen.Height() == 0 {
		return
	}
	painted := false
	x0, y0, x1, y1 := c.cellRange(float64(r.X), float64(r.Y), float64(r.Right()), float64(r.Bottom()))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			lx, ly := c.cellCenter(x, y)
			if lx >= float64(r.X) && lx < float64(r.Right()) && ly >= float64(r.Y) && ly < float64(r.Bottom()) {
				c.screen.SetBg(x, y, col)
				painted = true
			}
		}
	}
	if !painted {
		cx, cy := r.Center()
		x, y := c.ToCell(float64(cx), float64(cy))
		c.screen.SetBg(x, y, col)
	}
}

// FillEllipse paints the cells whose centers lie inside the ellipse
// inscribed in r.
func (c *Canvas) FillEllipse(r core.Rect, col core.Color) {
	if r.Empty() || c.screen.Width() == 0 || c.screen.Height() == 0 {
		return
	}
	rx, ry := float64(r.W)/2, float64(r.H)/2
	ex, ey := float64(r.X)+rx, float64(r.Y)+ry
	x0, y0, x1, y1 := c.cellRange(float64(r.X), float64(r.Y), float64(r.Right()), float64(r.Bottom()))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			lx, ly := c.cellCenter(x, y)
			dx, dy := (lx-ex)/rx, (ly-ey)/ry
			if dx*dx+dy*dy <= 1 {
				c.screen.SetBg(x, y, col)
			}
		}
	}
}

// FillPolygon paints the cells whose centers lie inside the polygon,
// using the even-odd rule.
func (c *Canvas) FillPolygon(pts []core.Vec2, col core.Color) {
	if len(pts) < 3 || c.screen.Width() == 0 || c.screen.Height() == 0 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	x0, y0, x1, y1 := c.cellRange(minX, minY, maxX, maxY)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			lx, ly := c.cellCenter(x, y)
			if pointInPolygon(lx, ly, pts) {
				c.screen.SetBg(x, y, col)
			}
		}
	}
}

func pointInPolygon(x, y float64, pts []core.Vec2) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) {
			cross := pi.X + (y-pi.Y)*(pj.X-pi.X)/(pj.Y-pi.Y)
			if x < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Line draws a segment as a run of line glyphs in the cells it crosses.
// The glyph follows the slope in cell units; the cell background is kept.
func (c *Canvas) Line(from, to core.Vec2, _ float64, col core.Color) {
	cw, ch := c.cellSize()
	if cw == 0 || ch == 0 {
		return
	}
	glyph := lineGlyph((to.X-from.X)/cw, (to.Y-from.Y)/ch)

	fx, fy := c.ToCell(from.X, from.Y)
	tx, ty := c.ToCell(to.X, to.Y)
	steps := max(abs(tx-fx), abs(ty-fy))
	for i := 0; i <= steps; i++ {
		x, y := fx, fy
		if steps > 0 {
			t := float64(i) / float64(steps)
			x = int(math.Round(core.Lerp(float64(fx), float64(tx), t)))
			y = int(math.Round(core.Lerp(float64(fy), float64(ty), t)))
		}
		c.screen.Set(x, y, glyph, col)
	}
}

// lineGlyph picks a box drawing rune for a direction given in cells.
func lineGlyph(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay > 2*ax:
		return '│'
	case ax > 2*ay:
		return '─'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// DrawText writes text starting in the cell that contains (x, y).
func (c *Canvas) DrawText(x, y int, text string, col core.Color) {
	cx, cy := c.ToCell(float64(x), float64(y))
	c.screen.DrawText(cx, cy, text, col)
}

// MeasureText returns the logical size of text drawn one rune per cell.
func (c *Canvas) MeasureText(text string) (int, int) {
	cw, ch := c.cellSize()
	return int(math.Ceil(float64(utf8.RuneCountInString(text)) * cw)), int(math.Ceil(ch))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
