package crossing

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

// Hazard is a bug crawling rightwards across a lane. It never deactivates;
// once it leaves its bounds it is moved back to where it spawned.
type Hazard struct {
	Entity
}

// NewHazard creates a hazard heading right at the given speed.
func NewHazard(pos mgl64.Vec2, speed float64, bounds config.BoundsConfig) *Hazard {
	return &Hazard{
		Entity: newEntity(KindHazard, pos, speed, 1, 0, SpriteBug, bounds),
	}
}

// Update moves the hazard, kills the player on contact and recycles the
// hazard when it has crawled off the canvas.
func (h *Hazard) Update(dt float64, s *Session) {
	h.Move(dt)

	if h.CollidedWith(&s.player.Entity, s.cfg.Hazards.Radius) {
		s.player.Die(s)
	}

	if h.OutOfBounds(s.canvas) {
		h.Respawn()
	}
}
