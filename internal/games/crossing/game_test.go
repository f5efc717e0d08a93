package crossing

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bug-crossing/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	moves := []core.Action{core.ActionUp, core.ActionNone, core.ActionLeft, core.ActionNone, core.ActionUp}
	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		if a := moves[i%len(moves)]; a != core.ActionNone && i%10 == 0 {
			in.Set(a)
		}
		r1 := g1.Step(in)
		r2 := g2.Step(in)

		if r1.State != r2.State {
			t.Fatalf("tick %d: states differ: %+v vs %+v", i, r1.State, r2.State)
		}
	}

	p1, p2 := g1.Session().Player(), g2.Session().Player()
	if p1.Pos != p2.Pos {
		t.Errorf("player positions differ: %v vs %v", p1.Pos, p2.Pos)
	}
}

func TestGameStepMovesPlayer(t *testing.T) {
	g := newTestGame(1)
	g.Session().hazards = nil
	g.Session().collectibles = nil

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionUp)
	g.Step(in)

	p := g.Session().Player()
	if p.X() != 300 || p.Y() != 307 {
		t.Errorf("player at (%v,%v), want (300,307)", p.X(), p.Y())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	frames := g.Session().Frames()
	g.Step(core.NewInputFrame())
	if g.Session().Frames() != frames {
		t.Error("paused game should not update")
	}

	g.Step(in)
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestGameOverState(t *testing.T) {
	g := newTestGame(1)
	s := g.Session()
	s.hazards = nil
	s.Player().Lives = 1
	s.score = 40

	s.Player().Die(s)
	state := g.State()

	if !state.GameOver {
		t.Error("State().GameOver should be set")
	}
	if state.Score != 10 || state.Lives != 0 {
		t.Errorf("state = %+v, want score 10 and no lives", state)
	}
	if g.statusCue != CueDie {
		t.Errorf("status cue = %q, want %q", g.statusCue, CueDie)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, strings.Repeat(heartChar, 3)) {
		t.Error("HUD should show three hearts")
	}
	if !strings.ContainsRune(out, WaterChar) {
		t.Error("board should draw the water row")
	}
	if !strings.Contains(out, "☺") {
		t.Error("board should draw the player")
	}
}

func TestGameCharacter(t *testing.T) {
	g := New()
	if len(g.Characters()) != len(Characters()) {
		t.Fatalf("Characters() = %d options", len(g.Characters()))
	}

	g.SetCharacter("princess")
	g.Reset(core.DefaultConfig())

	if g.Character() != "princess" {
		t.Errorf("Character() = %q", g.Character())
	}
	if got := g.Session().Player().Sprite; got != SpritePrincessGirl {
		t.Errorf("player sprite = %s, want %s", got, SpritePrincessGirl)
	}
}

func TestRendererSkipsHUDRows(t *testing.T) {
	screen := core.NewScreen(80, 24)
	g := newTestGame(1)
	layout := newBoardLayout(screen, g.cfg.Canvas, hudRows, footerRows)
	r := screenRenderer{dst: screen, layout: layout}

	// A bug far above the board must not land on the HUD row
	r.Draw(SpriteBug, 100, -400)
	if strings.Contains(screen.Row(0), "ж") {
		t.Error("sprite drawn over the HUD")
	}

	r.Draw(SpriteBug, 100, 55)
	if !strings.Contains(screen.String(), "ж") {
		t.Error("sprite inside the board should be drawn")
	}
}
