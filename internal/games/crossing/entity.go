package crossing

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
)

// Kind tags an entity with its variant. It selects the boundary rectangle
// once, at construction.
type Kind int

const (
	KindDefault Kind = iota
	KindPlayer
	KindHazard
	KindCollectible
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindHazard:
		return "hazard"
	case KindCollectible:
		return "collectible"
	default:
		return "default"
	}
}

// edgesFor picks the boundary rectangle for a kind.
// Players get the tile-calibrated rectangle, hazards the permissive one
// that allows off-screen spawning, everything else the visible canvas.
func edgesFor(kind Kind, b config.BoundsConfig) config.EdgeConfig {
	switch kind {
	case KindPlayer:
		return b.Player
	case KindHazard:
		return b.Hazard
	default:
		return b.Default
	}
}

// Entity is the spatial and movement state shared by everything on the board.
// Entities are never removed; deactivation is a flag on the variant.
type Entity struct {
	Pos    mgl64.Vec2 // Current position in canvas pixels
	Horiz  int        // Horizontal axis, one of -1, 0, 1
	Vert   int        // Vertical axis, one of -1, 0, 1
	Speed  float64    // Pixels per second for continuous movement
	Sprite Sprite

	kind       Kind
	start      mgl64.Vec2
	startHoriz int
	startVert  int
	edges      config.EdgeConfig
}

func newEntity(kind Kind, pos mgl64.Vec2, speed float64, horiz, vert int, sprite Sprite, bounds config.BoundsConfig) Entity {
	return Entity{
		Pos:        pos,
		Horiz:      horiz,
		Vert:       vert,
		Speed:      math.Max(speed, 0),
		Sprite:     sprite,
		kind:       kind,
		start:      pos,
		startHoriz: horiz,
		startVert:  vert,
		edges:      edgesFor(kind, bounds),
	}
}

// X returns the horizontal position.
func (e *Entity) X() float64 { return e.Pos.X() }

// Y returns the vertical position.
func (e *Entity) Y() float64 { return e.Pos.Y() }

// Kind returns the entity's variant tag.
func (e *Entity) Kind() Kind { return e.kind }

// Start returns the spawn position.
func (e *Entity) Start() mgl64.Vec2 { return e.start }

// StartAxes returns the spawn heading.
func (e *Entity) StartAxes() (horiz, vert int) { return e.startHoriz, e.startVert }

// Move advances the entity along its axes by Speed*dt.
func (e *Entity) Move(dt float64) {
	dir := mgl64.Vec2{float64(e.Horiz), float64(e.Vert)}
	e.Pos = e.Pos.Add(dir.Mul(e.Speed * dt))
}

// Respawn restores the spawn position and heading.
func (e *Entity) Respawn() {
	e.Pos = e.start
	e.Horiz, e.Vert = e.startHoriz, e.startVert
}

// CollidedWith reports whether other is closer than radius on both axes.
// This is a square proximity test, not a shape intersection.
func (e *Entity) CollidedWith(other *Entity, radius float64) bool {
	d := e.Pos.Sub(other.Pos)
	return math.Abs(d.X()) < radius && math.Abs(d.Y()) < radius
}

// Bounds returns the entity's boundary rectangle for the canvas' current size.
func (e *Entity) Bounds(c Canvas) core.Bounds {
	w, h := c.Size()
	return core.NewBounds(e.edges.Left, e.edges.Top, w-e.edges.RightInset, h-e.edges.BottomInset)
}

// OutOfBounds reports whether the entity lies strictly outside its boundary
// rectangle. Positions on an edge are still in bounds.
func (e *Entity) OutOfBounds(c Canvas) bool {
	return e.Bounds(c).Outside(e.X(), e.Y())
}
