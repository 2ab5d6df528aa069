package runner

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Obstacle is a block travelling from the horizon toward the camera.
type Obstacle struct {
	X         float64 // World x, one of the lane offsets
	Y         float64 // World depth
	Elevation float64 // Reported with the hitbox; does not lift the drawing
	Speed     float64 // Depth per tick

	width, height float64
	hitFraction   float64
	despawn       float64
	color         core.Color
}

// NewObstacle creates an obstacle in a random lane at the spawn depth.
func NewObstacle(rng *rand.Rand, cfg config.RunnerConfig, speed float64) *Obstacle {
	oc := cfg.Obstacles
	return &Obstacle{
		X:           cfg.Lanes[rng.Intn(len(cfg.Lanes))],
		Y:           oc.SpawnDepth,
		Elevation:   oc.Elevations[rng.Intn(len(oc.Elevations))],
		Speed:       speed,
		width:       oc.Width,
		height:      oc.Height,
		hitFraction: oc.HitboxFraction,
		despawn:     oc.DespawnDepth,
		color:       oc.Color,
	}
}

// Update advances the obstacle by one tick.
func (o *Obstacle) Update() {
	o.Y += o.Speed
}

// OffScreen reports whether the obstacle has passed the camera.
func (o *Obstacle) OffScreen() bool {
	return o.Y > o.despawn
}

// Rect returns the full draw rectangle.
func (o *Obstacle) Rect(proj Projector) core.Rect {
	return proj.footprint(o.X, o.Y, 0, o.width, o.height)
}

// Hitbox returns the collidable top strip of the draw rectangle.
func (o *Obstacle) Hitbox(proj Projector) core.Rect {
	r := o.Rect(proj)
	r.H = int(float64(r.H) * o.hitFraction)
	return r
}

// Draw fills the obstacle and returns its hitbox and elevation.
func (o *Obstacle) Draw(s core.Surface, proj Projector) (core.Rect, float64) {
	s.FillRect(o.Rect(proj), o.color)
	return o.Hitbox(proj), o.Elevation
}

// pruneObstacles removes obstacles that have passed the camera, reusing
// the backing array.
func pruneObstacles(obs []*Obstacle) []*Obstacle {
	kept := obs[:0]
	for _, o := range obs {
		if !o.OffScreen() {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(obs); i++ {
		obs[i] = nil
	}
	return kept
}
