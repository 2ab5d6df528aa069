package runner

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Projector maps world coordinates onto the logical screen.
//
// World x is the lateral offset from the road center, world y is depth
// (0 at the horizon, 1 at the ground line) and lift raises the point by
// that many pixels. Depth outside [0, 1] extrapolates linearly.
type Projector struct {
	centerX float64
	horizon float64
	ground  float64
}

// NewProjector creates a projector for the given screen geometry.
func NewProjector(s config.ScreenConfig) Projector {
	return Projector{
		centerX: float64(s.Width) / 2,
		horizon: s.Horizon,
		ground:  s.GroundY,
	}
}

// Scale returns the size factor at a depth: 0.5 at the horizon, 1 at the ground.
func (p Projector) Scale(worldY float64) float64 {
	return 0.5 + 0.5*worldY
}

// Project converts a world position to screen pixels and returns the
// scale factor used for entity sizes at that depth.
func (p Projector) Project(worldX, worldY, lift float64) (int, int, float64) {
	scale := p.Scale(worldY)
	screenX := p.centerX + worldX*scale
	screenY := p.horizon + (p.ground-p.horizon)*worldY - lift
	return int(screenX), int(screenY), scale
}

// footprint returns the rectangle of a w×h entity standing on the
// projected point: horizontally centered, bottom edge at the point.
func (p Projector) footprint(worldX, worldY, lift, w, h float64) core.Rect {
	sx, sy, scale := p.Project(worldX, worldY, lift)
	dw := int(w * scale)
	dh := int(h * scale)
	return core.NewRect(sx-dw/2, sy-dh, dw, dh)
}
