package core

// Surface is the drawing contract games render against.
// Coordinates are logical pixels; frontends map them onto whatever they
// actually present (terminal cells or a window).
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h int)

	// Fill paints the whole surface.
	Fill(c Color)

	// FillRect paints a filled rectangle. Empty rectangles draw nothing.
	FillRect(r Rect, c Color)

	// FillEllipse paints the ellipse inscribed in r.
	FillEllipse(r Rect, c Color)

	// FillPolygon paints a closed polygon.
	FillPolygon(points []Vec2, c Color)

	// Line strokes a segment with the given width in pixels.
	Line(from, to Vec2, width float64, c Color)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c Color)

	// MeasureText returns the size text would occupy when drawn.
	MeasureText(text string) (w, h int)
}

// DrawTextCentered draws text centered on (cx, cy).
func DrawTextCentered(s Surface, cx, cy int, text string, c Color) {
	w, h := s.MeasureText(text)
	s.DrawText(cx-w/2, cy-h/2, text, c)
}
