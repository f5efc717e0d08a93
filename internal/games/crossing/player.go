package crossing

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

// Player is the input-driven entity. It moves one tile per key press and
// never drifts between presses.
type Player struct {
	Entity
	Lives int

	step     mgl64.Vec2
	goalLine float64
}

// NewPlayer creates a player at the configured start position.
func NewPlayer(cfg config.CrossingConfig, sprite Sprite) *Player {
	start := mgl64.Vec2{cfg.Player.StartX, cfg.Player.StartY}
	return &Player{
		Entity:   newEntity(KindPlayer, start, 0, 0, 0, sprite, cfg.Bounds),
		Lives:    cfg.Player.Lives,
		step:     mgl64.Vec2{cfg.Player.StepX, cfg.Player.StepY},
		goalLine: cfg.Player.GoalLine,
	}
}

// Step returns the distance covered by one key press on each axis.
func (p *Player) Step() mgl64.Vec2 { return p.step }

// Move applies one discrete step along the current axes. dt is ignored.
func (p *Player) Move(_ float64) {
	p.Pos = p.Pos.Add(mgl64.Vec2{
		float64(p.Horiz) * p.step.X(),
		float64(p.Vert) * p.step.Y(),
	})
}

// HandleInput sets exactly one axis from a direction and moves at once.
// Unknown directions only reset the axes.
func (p *Player) HandleInput(d Direction) {
	// No diagonals: start from the spawn heading every press
	p.Horiz, p.Vert = p.startHoriz, p.startVert

	switch d {
	case DirectionLeft:
		p.Horiz = -1
	case DirectionRight:
		p.Horiz = 1
	case DirectionUp:
		p.Vert = -1
	case DirectionDown:
		p.Vert = 1
	}
	p.Move(0)
}

// ReachedGoal reports whether the player made it to the water row.
func (p *Player) ReachedGoal() bool {
	return p.Y() < p.goalLine
}

// Update resolves wins and deaths for this frame, then clears the axes.
func (p *Player) Update(s *Session) {
	if p.ReachedGoal() {
		p.Win(s)
	}

	if p.OutOfBounds(s.canvas) {
		p.Die(s)
	}

	p.Horiz, p.Vert = 0, 0
}

// Win awards the crossing bonus and sends the player back to the start.
func (p *Player) Win(s *Session) {
	if s.ended {
		return
	}

	points := s.cfg.Scoring.WinPoints
	s.award(points)
	s.notify(CueWin, fmt.Sprintf("+%d : Reached Water!", points))
	p.Respawn()
}

// Die deducts the death penalty and a life. At zero lives the session ends;
// otherwise the player respawns.
func (p *Player) Die(s *Session) {
	if s.ended {
		return
	}

	penalty := s.cfg.Scoring.DeathPenalty
	s.penalize(penalty)
	if p.Lives > 0 {
		p.Lives--
	}
	s.notify(CueDie, fmt.Sprintf("-%d : OUCH!", penalty))

	if p.Lives <= 0 {
		s.end()
		return
	}
	p.Respawn()
}
