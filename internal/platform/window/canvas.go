package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/lane-runner/internal/core"
)

const (
	textScale       = 2
	ellipseSegments = 32
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage.
	// Use whiteSubImage at DrawTriangles instead of whiteImage in order to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	fontFace = text.NewGoXFace(bitmapfont.Face)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws the logical surface 1:1 onto an Ebitengine image.
type Canvas struct {
	dst      *ebiten.Image
	w, h     int
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas creates a canvas of the given logical size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{w: w, h: h}
}

// Target sets the image drawn on by subsequent calls.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the logical size.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Fill paints the whole surface.
func (c *Canvas) Fill(col core.Color) {
	c.dst.Fill(col)
}

// FillRect paints a filled rectangle.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

// FillEllipse paints the ellipse inscribed in r.
func (c *Canvas) FillEllipse(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	rx, ry := float64(r.W)/2, float64(r.H)/2
	cx, cy := float64(r.X)+rx, float64(r.Y)+ry

	pts := make([]core.Vec2, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = core.V(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	c.FillPolygon(pts, col)
}

// FillPolygon paints a closed polygon.
func (c *Canvas) FillPolygon(pts []core.Vec2, col core.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r, g, b := vertexColor(col)
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, 1
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

// Line strokes a segment.
func (c *Canvas) Line(from, to core.Vec2, width float64, col core.Color) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), col, true)
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, s string, col core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, fontFace, op)
}

// MeasureText returns the size of text drawn by DrawText.
func (c *Canvas) MeasureText(s string) (int, int) {
	w, h := text.Measure(s, fontFace, 0)
	return int(math.Ceil(w * textScale)), int(math.Ceil(h * textScale))
}

func vertexColor(col core.Color) (r, g, b float32) {
	return float32(col.R) / 0xff, float32(col.G) / 0xff, float32(col.B) / 0xff
}
