package runner

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// groundDepth is the world depth the player runs at.
const groundDepth = 1.0

// Player is the runner sprite. It eases between lanes and jumps with the
// strength and gravity of the difficulty it was created with.
type Player struct {
	cfg   config.PlayerConfig
	lanes []float64
	color core.Color

	lane    int
	x       float64 // Current world x, eased toward targetX
	targetX float64

	height   float64 // Height above the ground, never negative
	velocity float64 // Vertical velocity while airborne
	jumping  bool

	strength float64
	gravity  float64
}

// NewPlayer creates a grounded player in the configured start lane.
func NewPlayer(cfg config.RunnerConfig, profile config.DifficultyProfile, color core.Color) *Player {
	lanes := append([]float64(nil), cfg.Lanes...)
	lane := core.Clamp(cfg.Player.StartLane, 0, len(lanes)-1)
	return &Player{
		cfg:      cfg.Player,
		lanes:    lanes,
		color:    color,
		lane:     lane,
		x:        lanes[lane],
		targetX:  lanes[lane],
		strength: profile.JumpStrength,
		gravity:  profile.Gravity,
	}
}

// Move shifts the target lane on rising edges of left and right, then
// eases the world x toward the target. It must be called once per tick.
func (p *Player) Move(left, right bool) {
	if left && p.lane > 0 {
		p.lane--
		p.targetX = p.lanes[p.lane]
	}
	if right && p.lane < len(p.lanes)-1 {
		p.lane++
		p.targetX = p.lanes[p.lane]
	}
	p.x += (p.targetX - p.x) * p.cfg.LaneEase
}

// Jump starts a jump. It does nothing while airborne.
func (p *Player) Jump() {
	if p.jumping {
		return
	}
	p.jumping = true
	p.velocity = p.strength
}

// Update integrates one tick of the jump.
func (p *Player) Update() {
	if !p.jumping {
		return
	}
	p.height += p.velocity
	p.velocity -= p.gravity
	if p.height <= 0 {
		p.height = 0
		p.jumping = false
		p.velocity = 0
	}
}

// Bounds returns the player's draw rectangle, which is also its hitbox.
func (p *Player) Bounds(proj Projector) core.Rect {
	return proj.footprint(p.x, groundDepth, p.height, p.cfg.Width, p.cfg.Height)
}

// Shadow returns the ground shadow rectangle while airborne. The shadow
// shrinks with height; ok is false when there is nothing to draw.
func (p *Player) Shadow(proj Projector) (r core.Rect, ok bool) {
	if p.height <= 0 {
		return core.Rect{}, false
	}
	sx, sy, scale := proj.Project(p.x, groundDepth, 0)
	w := int(p.cfg.Width * scale)
	radius := int(float64(w) * p.cfg.ShadowRatio * (1 - p.height/p.cfg.ShadowFade))
	if radius <= 0 {
		return core.Rect{}, false
	}
	return core.NewRect(sx-radius, sy-radius/2, radius*2, radius), true
}

// Draw paints the shadow and the player and returns the collision
// rectangle together with the current height.
func (p *Player) Draw(s core.Surface, proj Projector) (core.Rect, float64) {
	if shadow, ok := p.Shadow(proj); ok {
		s.FillEllipse(shadow, core.ColorShadow)
	}
	r := p.Bounds(proj)
	s.FillRect(r, p.color)
	return r, p.height
}

// Lane returns the current lane index.
func (p *Player) Lane() int { return p.lane }

// X returns the current world x.
func (p *Player) X() float64 { return p.x }

// Height returns the height above the ground.
func (p *Player) Height() float64 { return p.height }

// Jumping reports whether the player is airborne.
func (p *Player) Jumping() bool { return p.jumping }

// Color returns the render color.
func (p *Player) Color() core.Color { return p.color }
