package runner

import "github.com/vovakirdan/lane-runner/internal/core"

// op is one recorded drawing call.
type op struct {
	kind  string
	rect  core.Rect
	pts   []core.Vec2
	text  string
	color core.Color
}

// recorder is a Surface that records calls instead of drawing.
type recorder struct {
	w, h int
	ops  []op
}

func newRecorder() *recorder {
	return &recorder{w: 800, h: 600}
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Fill(c core.Color) {
	r.ops = append(r.ops, op{kind: "fill", color: c})
}

func (r *recorder) FillRect(rect core.Rect, c core.Color) {
	r.ops = append(r.ops, op{kind: "rect", rect: rect, color: c})
}

func (r *recorder) FillEllipse(rect core.Rect, c core.Color) {
	r.ops = append(r.ops, op{kind: "ellipse", rect: rect, color: c})
}

func (r *recorder) FillPolygon(pts []core.Vec2, c core.Color) {
	r.ops = append(r.ops, op{kind: "polygon", pts: pts, color: c})
}

func (r *recorder) Line(from, to core.Vec2, _ float64, c core.Color) {
	r.ops = append(r.ops, op{kind: "line", pts: []core.Vec2{from, to}, color: c})
}

func (r *recorder) DrawText(x, y int, text string, c core.Color) {
	r.ops = append(r.ops, op{kind: "text", rect: core.NewRect(x, y, 0, 0), text: text, color: c})
}

// MeasureText assumes a 10x20 pixel monospace font.
func (r *recorder) MeasureText(text string) (int, int) {
	return len([]rune(text)) * 10, 20
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.kind == "text" {
			out = append(out, o.text)
		}
	}
	return out
}

func (r *recorder) findText(text string) (op, bool) {
	for _, o := range r.ops {
		if o.kind == "text" && o.text == text {
			return o, true
		}
	}
	return op{}, false
}
