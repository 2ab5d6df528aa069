package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Road is the scrolling perspective road behind the entities.
type Road struct {
	cfg    config.RoadConfig
	offset float64 // Dash scroll position in [0, 1)
}

// NewRoad creates a road with zero offset.
func NewRoad(cfg config.RoadConfig) *Road {
	return &Road{cfg: cfg}
}

// Advance scrolls the dashes by speed and wraps the offset into [0, 1).
func (r *Road) Advance(speed float64) {
	r.offset = wrapUnit(r.offset + speed)
}

// Offset returns the scroll position.
func (r *Road) Offset() float64 { return r.offset }

// Reset returns the dashes to their starting position.
func (r *Road) Reset() { r.offset = 0 }

// Draw paints the sky, road surface and lane markings at the current offset.
func (r *Road) Draw(s core.Surface, w, h int) {
	DrawRoad(s, r.cfg, w, h, r.offset)
}

// DrawRoad paints the road for a w×h screen at the given scroll offset.
//
// The road is a trapezoid spanning the full screen height. Each of the
// four markings is split into cfg.Dashes segments; even segments are drawn.
// Inner markings sit a third of the road width in from the outer edges.
func DrawRoad(s core.Surface, cfg config.RoadConfig, w, h int, offset float64) {
	W, H := float64(w), float64(h)

	s.Fill(cfg.Sky)
	s.FillPolygon([]core.Vec2{
		core.V(W*cfg.BottomLeft, H),
		core.V(W*cfg.BottomRight, H),
		core.V(W*cfg.TopRight, 0),
		core.V(W*cfg.TopLeft, 0),
	}, cfg.Surface)

	n := float64(cfg.Dashes)
	for i := 0; i < cfg.Dashes; i += 2 {
		p1 := math.Mod(float64(i)/n+offset, 1)
		p2 := p1 + 0.5/n
		y1, y2 := H*p1, H*p2

		left1 := W * core.Lerp(cfg.TopLeft, cfg.BottomLeft, p1)
		left2 := W * core.Lerp(cfg.TopLeft, cfg.BottomLeft, p2)
		right1 := W * core.Lerp(cfg.TopRight, cfg.BottomRight, p1)
		right2 := W * core.Lerp(cfg.TopRight, cfg.BottomRight, p2)
		third := (right1 - left1) / 3

		for _, seg := range [][2]core.Vec2{
			{core.V(left1, y1), core.V(left2, y2)},
			{core.V(left1+third, y1), core.V(left2+third, y2)},
			{core.V(right1-third, y1), core.V(right2-third, y2)},
			{core.V(right1, y1), core.V(right2, y2)},
		} {
			s.Line(seg[0], seg[1], cfg.LineWidth, cfg.Marking)
		}
	}
}

func wrapUnit(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}
