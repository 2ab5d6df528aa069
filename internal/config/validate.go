package config

import "math"

// Validate checks the configuration and fails fast on anything the game
// cannot run with. The first problem found is returned.
func (c RunnerConfig) Validate() error {
	if err := c.Screen.validate(); err != nil {
		return err
	}

	if len(c.Lanes) != 3 {
		return invalid("lanes: need exactly 3 lane offsets, got %d", len(c.Lanes))
	}
	for i := 1; i < len(c.Lanes); i++ {
		if c.Lanes[i] <= c.Lanes[i-1] {
			return invalid("lanes: offsets must be strictly increasing")
		}
	}

	if err := c.Player.validate(len(c.Lanes)); err != nil {
		return err
	}
	if err := c.Obstacles.validate(); err != nil {
		return err
	}

	if c.Spawn.JitterMin <= 0 || c.Spawn.JitterMax < c.Spawn.JitterMin {
		return invalid("spawn: jitter bounds must satisfy 0 < min <= max, got [%g, %g]",
			c.Spawn.JitterMin, c.Spawn.JitterMax)
	}

	if c.Road.Dashes <= 0 {
		return invalid("road: dashes must be positive")
	}
	if c.Road.LineWidth <= 0 {
		return invalid("road: line_width must be positive")
	}

	if len(c.Difficulties) == 0 {
		return invalid("difficulties: at least one profile is required")
	}
	seen := make(map[string]bool, len(c.Difficulties))
	for _, p := range c.Difficulties {
		key := string(p.Name)
		if key == "" {
			return invalid("difficulties: profile without a name")
		}
		if seen[upper(key)] {
			return invalid("difficulties: duplicate profile %q", key)
		}
		seen[upper(key)] = true
		if err := p.validate(); err != nil {
			return err
		}
	}

	if len(c.Colors) == 0 {
		return invalid("colors: at least one color is required")
	}
	seenColors := make(map[string]bool, len(c.Colors))
	for _, pc := range c.Colors {
		if pc.Name == "" {
			return invalid("colors: color without a name")
		}
		if seenColors[upper(pc.Name)] {
			return invalid("colors: duplicate color %q", pc.Name)
		}
		seenColors[upper(pc.Name)] = true
	}

	if _, err := c.ProfileIndex(c.Defaults.Difficulty); err != nil {
		return err
	}
	if _, err := c.ColorIndex(c.Defaults.Color); err != nil {
		return err
	}
	return nil
}

func (s ScreenConfig) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return invalid("screen: size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.GroundY <= s.Horizon {
		return invalid("screen: ground_y (%g) must be below horizon (%g)", s.GroundY, s.Horizon)
	}
	if s.TickRate <= 0 {
		return invalid("screen: tick_rate must be positive")
	}
	return nil
}

func (p PlayerConfig) validate(lanes int) error {
	if p.Width <= 0 || p.Height <= 0 {
		return invalid("player: size must be positive")
	}
	if p.StartLane < 0 || p.StartLane >= lanes {
		return invalid("player: start_lane %d out of range [0, %d]", p.StartLane, lanes-1)
	}
	if p.LaneEase <= 0 || p.LaneEase > 1 {
		return invalid("player: lane_ease must be in (0, 1], got %g", p.LaneEase)
	}
	if p.ShadowFade <= 0 {
		return invalid("player: shadow_fade must be positive")
	}
	return nil
}

func (o ObstacleConfig) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return invalid("obstacles: size must be positive")
	}
	if o.DespawnDepth <= o.SpawnDepth {
		return invalid("obstacles: despawn_depth must exceed spawn_depth")
	}
	if len(o.Elevations) == 0 {
		return invalid("obstacles: at least one elevation is required")
	}
	if o.HitboxFraction <= 0 || o.HitboxFraction > 1 {
		return invalid("obstacles: hitbox_fraction must be in (0, 1], got %g", o.HitboxFraction)
	}
	return nil
}

func (p DifficultyProfile) validate() error {
	if p.Speed <= 0 {
		return invalid("difficulty %s: speed must be positive", p.Name)
	}
	if p.IntervalMs <= 0 {
		return invalid("difficulty %s: interval_ms must be positive", p.Name)
	}
	if p.JumpStrength <= 0 || p.Gravity <= 0 {
		return invalid("difficulty %s: jump_strength and gravity must be positive", p.Name)
	}
	if len(p.GroupWeights) == 0 {
		return invalid("difficulty %s: group_weights must not be empty", p.Name)
	}
	total := 0.0
	for _, w := range p.GroupWeights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return invalid("difficulty %s: group weights must be finite and non-negative", p.Name)
		}
		total += w
	}
	if total <= 0 {
		return invalid("difficulty %s: group weights sum to zero", p.Name)
	}
	return nil
}
