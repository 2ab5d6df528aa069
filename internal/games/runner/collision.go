package runner

import "github.com/vovakirdan/lane-runner/internal/core"

// Collides reports whether the player hits an obstacle hitbox.
// An airborne player never collides.
func Collides(player core.Rect, playerHeight float64, hitbox core.Rect) bool {
	if playerHeight > 0 {
		return false
	}
	return player.Intersects(hitbox)
}
