package crossing

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

// Collectible is a stationary gem worth a fixed number of points.
// It can be collected once; afterwards it is neither drawn nor checked.
type Collectible struct {
	Entity
	Active bool
	Points int
}

// NewCollectible creates an active gem of the given tier.
func NewCollectible(pos mgl64.Vec2, tier config.PickupTier, bounds config.BoundsConfig) *Collectible {
	return &Collectible{
		Entity: newEntity(KindCollectible, pos, 0, 0, 0, Sprite(tier.Sprite), bounds),
		Active: true,
		Points: tier.Points,
	}
}

// Update collects the gem when the player is within the pickup radius.
func (c *Collectible) Update(s *Session) {
	if !c.Active || !c.CollidedWith(&s.player.Entity, s.cfg.Pickups.Radius) {
		return
	}

	c.Active = false
	s.award(c.Points)
	s.notify(CueCollect, fmt.Sprintf("+%d! What a GEM!", c.Points))
}
