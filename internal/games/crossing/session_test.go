package crossing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

// recorder captures hook calls.
type recorder struct {
	cues   []Cue
	texts  []string
	ends   int
	finals []int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		Notify: func(cue Cue, text string) {
			r.cues = append(r.cues, cue)
			r.texts = append(r.texts, text)
		},
		End: func(score int) {
			r.ends++
			r.finals = append(r.finals, score)
		},
	}
}

func (r *recorder) count(cue Cue) int {
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

// emptySession returns a session with no hazards or collectibles so tests
// can place exactly the entities they need.
func emptySession(t *testing.T, rec *recorder) *Session {
	t.Helper()
	s := NewSession(config.DefaultCrossingConfig(), testCanvas(), 1, SpriteBoy, rec.hooks())
	s.hazards = nil
	s.collectibles = nil
	return s
}

func TestHazardCrossesWithoutCollision(t *testing.T) {
	rec := &recorder{}
	s := emptySession(t, rec)
	h := NewHazard(mgl64.Vec2{-101, 55}, 150, s.cfg.Bounds)
	s.hazards = []*Hazard{h}

	s.Update(1.0)

	if h.X() != 49 || h.Y() != 55 {
		t.Errorf("hazard at (%v,%v), want (49,55)", h.X(), h.Y())
	}
	if s.Player().Lives != 3 {
		t.Errorf("Lives = %d, want 3", s.Player().Lives)
	}
	if s.Score() != 0 {
		t.Errorf("Score = %d, want 0", s.Score())
	}
	if len(rec.cues) != 0 {
		t.Errorf("unexpected notifications: %v", rec.cues)
	}
}

func TestHazardRespawnsWhenOutOfBounds(t *testing.T) {
	s := emptySession(t, &recorder{})
	h := NewHazard(mgl64.Vec2{-101, 55}, 700, s.cfg.Bounds)
	s.hazards = []*Hazard{h}

	s.Update(1.0) // 599 is past the right edge

	if h.Pos != (mgl64.Vec2{-101, 55}) {
		t.Errorf("hazard at %v, want back at (-101,55)", h.Pos)
	}
	if h.Horiz != 1 || h.Vert != 0 {
		t.Errorf("heading = (%d,%d), want (1,0)", h.Horiz, h.Vert)
	}
}

func TestHazardContactKillsPlayer(t *testing.T) {
	rec := &recorder{}
	s := emptySession(t, rec)
	s.score = 50
	s.hazards = []*Hazard{NewHazard(mgl64.Vec2{290, 400}, 0, s.cfg.Bounds)}

	s.Player().Pos = mgl64.Vec2{290, 307}
	s.Update(0.1)
	if s.Player().Lives != 3 {
		t.Fatalf("player out of reach should not die, lives = %d", s.Player().Lives)
	}

	s.Player().Pos = mgl64.Vec2{300, 390}
	s.Update(0.1)

	if s.Player().Lives != 2 {
		t.Errorf("Lives = %d, want 2", s.Player().Lives)
	}
	if s.Score() != 20 {
		t.Errorf("Score = %d, want 20", s.Score())
	}
	if s.Player().Pos != s.Player().Start() {
		t.Errorf("player should respawn, at %v", s.Player().Pos)
	}
	if rec.count(CueDie) != 1 || rec.texts[0] != "-30 : OUCH!" {
		t.Errorf("notifications = %v %v", rec.cues, rec.texts)
	}
}

func TestHandleInputUpMovesOneTile(t *testing.T) {
	s := emptySession(t, &recorder{})
	p := s.Player()

	s.QueueInput(DirectionUp)
	s.Update(0.016)

	if p.X() != 300 || p.Y() != 307 {
		t.Errorf("player at (%v,%v), want (300,307)", p.X(), p.Y())
	}
	if p.Horiz != 0 || p.Vert != 0 {
		t.Errorf("axes = (%d,%d), want cleared", p.Horiz, p.Vert)
	}
}

func TestPlayerIgnoresDt(t *testing.T) {
	s := emptySession(t, &recorder{})
	p := s.Player()

	p.Horiz = 1
	p.Move(10)

	if p.X() != 401 {
		t.Errorf("X = %v, want 401", p.X())
	}
}

func TestQueuedInputLatestWins(t *testing.T) {
	s := emptySession(t, &recorder{})
	p := s.Player()

	s.QueueInput(DirectionLeft)
	s.QueueInput(DirectionUp)
	s.Update(0.016)

	if p.X() != 300 || p.Y() != 307 {
		t.Errorf("player at (%v,%v), want (300,307)", p.X(), p.Y())
	}

	// The buffer is drained: no further movement without new input
	s.Update(0.016)
	if p.Y() != 307 {
		t.Errorf("Y = %v after idle frame, want 307", p.Y())
	}
}

func TestUnknownDirectionIsNoop(t *testing.T) {
	s := emptySession(t, &recorder{})
	p := s.Player()

	s.QueueInput(Direction("jump"))
	s.Update(0.016)

	if p.Pos != p.Start() {
		t.Errorf("player moved to %v on unknown input", p.Pos)
	}
}

func TestReachingWaterWins(t *testing.T) {
	rec := &recorder{}
	s := emptySession(t, rec)
	p := s.Player()

	for i := 0; i < 5; i++ {
		s.QueueInput(DirectionUp)
		s.Update(0.016)
	}

	if s.Score() != 10 {
		t.Errorf("Score = %d, want 10", s.Score())
	}
	if p.Pos != p.Start() {
		t.Errorf("player should respawn after a win, at %v", p.Pos)
	}
	if p.Lives != 3 {
		t.Errorf("Lives = %d, want 3", p.Lives)
	}
	if rec.count(CueWin) != 1 || rec.texts[0] != "+10 : Reached Water!" {
		t.Errorf("notifications = %v %v", rec.cues, rec.texts)
	}
}

func TestWalkingOffBoardDies(t *testing.T) {
	rec := &recorder{}
	s := emptySession(t, rec)
	p := s.Player()

	s.QueueInput(DirectionDown) // 473 is below the player floor
	s.Update(0.016)

	if p.Lives != 2 {
		t.Errorf("Lives = %d, want 2", p.Lives)
	}
	if p.Pos != p.Start() {
		t.Errorf("player should respawn, at %v", p.Pos)
	}
}

func TestGemCollectedOnce(t *testing.T) {
	rec := &recorder{}
	s := emptySession(t, rec)
	gem := NewCollectible(mgl64.Vec2{320, 380}, config.PickupTier{Points: 20, Sprite: string(SpriteGemGold)}, s.cfg.Bounds)
	s.collectibles = []*Collectible{gem}

	s.Update(0.016)
	s.Update(0.016)

	if s.Score() != 20 {
		t.Errorf("Score = %d, want 20", s.Score())
	}
	if gem.Active {
		t.Error("gem should be inactive")
	}
	if rec.count(CueCollect) != 1 || rec.texts[0] != "+20! What a GEM!" {
		t.Errorf("notifications = %v %v", rec.cues, rec.texts)
	}

	var draws DrawList
	s.Render(&draws)
	for _, d := range draws {
		if d.Sprite == SpriteGemGold {
			t.Error("inactive gem should not be drawn")
		}
	}
}

func TestScoreNeverNegative(t *testing.T) {
	s := emptySession(t, &recorder{})
	s.score = 10

	s.Player().Die(s)

	if s.Score() != 0 {
		t.Errorf("Score = %d, want 0", s.Score())
	}
	if s.Player().Lives != 2 {
		t.Errorf("Lives = %d, want 2", s.Player().Lives)
	}
}

func TestLastLifeEndsSessionOnce(t *testing.T) {
	rec := &recorder{}
	s := emptySession(t, rec)
	s.score = 45
	s.Player().Lives = 1

	s.Player().Die(s)

	if !s.Ended() {
		t.Fatal("session should end at zero lives")
	}
	if s.Player().Lives != 0 {
		t.Errorf("Lives = %d, want 0", s.Player().Lives)
	}
	if rec.ends != 1 || rec.finals[0] != 15 {
		t.Errorf("end sink calls = %d %v, want one call with 15", rec.ends, rec.finals)
	}

	// Anything after the end is ignored
	s.Player().Die(s)
	s.Player().Win(s)
	frames := s.Frames()
	s.QueueInput(DirectionUp)
	s.Update(0.016)

	if rec.ends != 1 {
		t.Errorf("end sink called %d times, want 1", rec.ends)
	}
	if s.Player().Lives != 0 || s.Score() != 15 {
		t.Errorf("state changed after end: lives %d score %d", s.Player().Lives, s.Score())
	}
	if s.Frames() != frames {
		t.Errorf("Update ran after end")
	}
}

func TestTwoHazardsOnLastLifeEndOnce(t *testing.T) {
	rec := &recorder{}
	s := emptySession(t, rec)
	s.Player().Lives = 1
	s.hazards = []*Hazard{
		NewHazard(mgl64.Vec2{300, 390}, 0, s.cfg.Bounds),
		NewHazard(mgl64.Vec2{305, 390}, 0, s.cfg.Bounds),
	}

	s.Update(0.016)

	if rec.ends != 1 {
		t.Errorf("end sink called %d times, want 1", rec.ends)
	}
	if rec.count(CueDie) != 1 {
		t.Errorf("die notified %d times, want 1", rec.count(CueDie))
	}
}

func TestGoalOpensOnce(t *testing.T) {
	rec := &recorder{}
	s := emptySession(t, rec)
	s.score = 100

	s.Update(0.016)
	s.Update(0.016)

	if !s.GoalOpen() {
		t.Fatal("goal should be open at the threshold")
	}
	if rec.count(CueGoalOpen) != 1 {
		t.Errorf("goal-open notified %d times, want 1", rec.count(CueGoalOpen))
	}

	// Dropping below the threshold does not close the door
	s.Player().Die(s)
	s.Update(0.016)
	if !s.GoalOpen() {
		t.Error("goal should stay open")
	}
}

func TestGoalClosedBelowThreshold(t *testing.T) {
	s := emptySession(t, &recorder{})
	s.score = 99

	s.Update(0.016)

	if s.GoalOpen() {
		t.Error("goal should be closed below the threshold")
	}
}

func TestEnteringGoalEndsRun(t *testing.T) {
	rec := &recorder{}
	s := emptySession(t, rec)
	s.score = 100

	for i := 0; i < 3; i++ {
		s.QueueInput(DirectionLeft)
		s.Update(0.016)
	}

	if !s.Ended() {
		t.Fatalf("session should end in the door, player at %v", s.Player().Pos)
	}
	if s.Player().Lives != 0 {
		t.Errorf("Lives = %d, want 0", s.Player().Lives)
	}
	// +100 bonus, then the death penalty
	if rec.ends != 1 || rec.finals[0] != 170 {
		t.Errorf("end sink = %d %v, want one call with 170", rec.ends, rec.finals)
	}
}

func TestDoorIgnoredWhileClosed(t *testing.T) {
	s := emptySession(t, &recorder{})

	for i := 0; i < 3; i++ {
		s.QueueInput(DirectionLeft)
		s.Update(0.016)
	}

	if s.Ended() {
		t.Error("closed door should not end the run")
	}
}

func TestRenderOrder(t *testing.T) {
	s := emptySession(t, &recorder{})
	s.hazards = []*Hazard{NewHazard(mgl64.Vec2{-101, 55}, 100, s.cfg.Bounds)}
	tiers := config.DefaultTiers()
	s.collectibles = []*Collectible{
		NewCollectible(mgl64.Vec2{50, 100}, tiers[0], s.cfg.Bounds),
		NewCollectible(mgl64.Vec2{150, 100}, tiers[1], s.cfg.Bounds),
	}
	s.collectibles[0].Active = false

	var draws DrawList
	s.Render(&draws)
	want := []Sprite{SpriteBug, SpriteGemBlue, SpriteBoy}
	if len(draws) != len(want) {
		t.Fatalf("draw calls = %v, want sprites %v", draws, want)
	}
	for i, sprite := range want {
		if draws[i].Sprite != sprite {
			t.Errorf("draw %d = %s, want %s", i, draws[i].Sprite, sprite)
		}
	}

	s.goalOpen = true
	draws = nil
	s.Render(&draws)
	last := draws[len(draws)-1]
	if last.Sprite != SpriteGoal || last.X != 1 || last.Y != 375 {
		t.Errorf("last draw = %+v, want goal at (1,375)", last)
	}
}

func TestNilHooksAreSkipped(t *testing.T) {
	s := NewSession(config.DefaultCrossingConfig(), testCanvas(), 3, SpriteBoy, Hooks{})
	s.hazards = nil
	s.Player().Lives = 1

	s.Player().Die(s)

	if !s.Ended() {
		t.Error("session should end without hooks")
	}
}
