// Package crossing implements Bug Crossing, a lane-crossing arcade game.
// The player hops across lanes of crawling bugs, picks up gems and
// reaches the water; once enough points are banked a door opens that
// ends the run with a bonus.
//
// The simulation is pixel-based and frame-driven. Session owns every
// entity and is passed into each entity update, so nothing in the package
// relies on globals.
package crossing

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

// Session runs one attempt: it owns score, lives (through the player),
// the goal door and every entity, and dispatches the per-frame update.
// A Session is not safe for concurrent use.
type Session struct {
	cfg    config.CrossingConfig
	canvas Canvas
	hooks  Hooks

	score    int
	goalOpen bool
	goal     mgl64.Vec2
	ended    bool
	frames   int

	// pending holds the single input token waiting for the next Update
	pending Direction

	hazards      []*Hazard
	collectibles []*Collectible
	player       *Player
}

// NewSession spawns a fresh board. The seed drives every random draw,
// so equal seeds produce equal boards.
func NewSession(cfg config.CrossingConfig, canvas Canvas, seed int64, sprite Sprite, hooks Hooks) *Session {
	cfg.Normalize()
	spawner := NewSpawner(seed, &cfg)

	return &Session{
		cfg:          cfg,
		canvas:       canvas,
		hooks:        hooks,
		goal:         mgl64.Vec2{cfg.Goal.X, cfg.Goal.Y},
		hazards:      spawner.Hazards(),
		collectibles: spawner.Collectibles(),
		player:       NewPlayer(cfg, sprite),
	}
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// GoalOpen reports whether the exit door has been unlocked.
func (s *Session) GoalOpen() bool { return s.goalOpen }

// Goal returns the door position.
func (s *Session) Goal() mgl64.Vec2 { return s.goal }

// Ended reports whether the session has terminated.
func (s *Session) Ended() bool { return s.ended }

// Frames returns the number of updates run so far.
func (s *Session) Frames() int { return s.frames }

// Player returns the controlled entity.
func (s *Session) Player() *Player { return s.player }

// Hazards returns the hazards in update order.
func (s *Session) Hazards() []*Hazard { return s.hazards }

// Collectibles returns the collectibles in update order, inactive ones included.
func (s *Session) Collectibles() []*Collectible { return s.collectibles }

// Config returns the normalized configuration the session runs with.
func (s *Session) Config() config.CrossingConfig { return s.cfg }

// QueueInput buffers a direction for the next Update. Only one token is
// kept; a later call replaces an earlier one.
func (s *Session) QueueInput(d Direction) {
	if s.ended {
		return
	}
	s.pending = d
}

// Update advances the simulation by one frame of dt seconds.
// Hazards and collectibles resolve contact before the player's own checks.
func (s *Session) Update(dt float64) {
	if s.ended {
		return
	}
	s.frames++

	if d := s.pending; d != DirectionNone {
		s.pending = DirectionNone
		s.player.HandleInput(d)
	}

	s.updateGoal()

	for _, h := range s.hazards {
		h.Update(dt, s)
		if s.ended {
			return
		}
	}

	for _, c := range s.collectibles {
		c.Update(s)
	}

	s.player.Update(s)
	if s.ended {
		return
	}

	s.checkGoalEntry()
}

// Render draws hazards, active collectibles, the player and, once open,
// the goal door. It does not change any state.
func (s *Session) Render(r Renderer) {
	for _, h := range s.hazards {
		r.Draw(h.Sprite, h.X(), h.Y())
	}
	for _, c := range s.collectibles {
		if c.Active {
			r.Draw(c.Sprite, c.X(), c.Y())
		}
	}
	r.Draw(s.player.Sprite, s.player.X(), s.player.Y())
	if s.goalOpen {
		r.Draw(SpriteGoal, s.goal.X(), s.goal.Y())
	}
}

// updateGoal opens the door the first frame the score reaches the threshold.
func (s *Session) updateGoal() {
	if s.goalOpen || s.score < s.cfg.Goal.Threshold {
		return
	}
	s.goalOpen = true
	s.notify(CueGoalOpen, fmt.Sprintf("+%d - IF you go through my door and end this!", s.cfg.Goal.Bonus))
}

// checkGoalEntry ends the run through the death path when the player
// steps into the open door.
func (s *Session) checkGoalEntry() {
	if !s.goalOpen {
		return
	}

	d := s.player.Pos.Sub(s.goal)
	r := s.cfg.Goal.Radius
	if math.Abs(d.X()) >= r || math.Abs(d.Y()) >= r {
		return
	}

	s.award(s.cfg.Goal.Bonus)
	s.player.Lives = 0
	s.player.Die(s)
}

func (s *Session) award(points int) {
	s.score += points
}

// penalize deducts points, never going below zero.
func (s *Session) penalize(points int) {
	s.score = max(s.score-points, 0)
}

func (s *Session) notify(cue Cue, text string) {
	if s.hooks.Notify != nil {
		s.hooks.Notify(cue, text)
	}
}

// end terminates the session and reports the final score once.
func (s *Session) end() {
	if s.ended {
		return
	}
	s.ended = true
	s.pending = DirectionNone
	if s.hooks.End != nil {
		s.hooks.End(s.score)
	}
}
