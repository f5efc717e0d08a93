package crossing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

func testCanvas() FixedCanvas {
	return FixedCanvas{Width: 505, Height: 606}
}

func TestOutOfBoundsByKind(t *testing.T) {
	bounds := config.DefaultCrossingConfig().Bounds
	canvas := testCanvas()

	tests := []struct {
		name string
		kind Kind
		pos  mgl64.Vec2
		out  bool
	}{
		{"player interior", KindPlayer, mgl64.Vec2{300, 390}, false},
		{"player left edge", KindPlayer, mgl64.Vec2{-50, 390}, false},
		{"player past left edge", KindPlayer, mgl64.Vec2{-50.5, 390}, true},
		{"player right edge", KindPlayer, mgl64.Vec2{455, 390}, false},
		{"player past right edge", KindPlayer, mgl64.Vec2{455.5, 390}, true},
		{"player above top", KindPlayer, mgl64.Vec2{300, -11}, true},
		{"player bottom edge", KindPlayer, mgl64.Vec2{300, 436}, false},
		{"player below bottom", KindPlayer, mgl64.Vec2{300, 473}, true},
		{"hazard far off-screen left", KindHazard, mgl64.Vec2{-8000, 55}, false},
		{"hazard right edge", KindHazard, mgl64.Vec2{505, 55}, false},
		{"hazard past right edge", KindHazard, mgl64.Vec2{506, 55}, true},
		{"hazard past left limit", KindHazard, mgl64.Vec2{-9001, 55}, true},
		{"default interior", KindDefault, mgl64.Vec2{0, 0}, false},
		{"default negative x", KindDefault, mgl64.Vec2{-1, 10}, true},
		{"default past bottom", KindDefault, mgl64.Vec2{10, 607}, true},
		{"collectible uses default", KindCollectible, mgl64.Vec2{505, 606}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEntity(tt.kind, tt.pos, 0, 0, 0, SpriteBug, bounds)
			if got := e.OutOfBounds(canvas); got != tt.out {
				t.Errorf("OutOfBounds(%v) = %v, want %v", tt.pos, got, tt.out)
			}
		})
	}
}

func TestOutOfBoundsQueriesCanvasEachTime(t *testing.T) {
	bounds := config.DefaultCrossingConfig().Bounds
	width := 505.0
	canvas := CanvasFunc(func() (float64, float64) { return width, 606 })

	e := newEntity(KindDefault, mgl64.Vec2{400, 10}, 0, 0, 0, SpriteBug, bounds)
	if e.OutOfBounds(canvas) {
		t.Fatal("entity should start in bounds")
	}

	width = 300
	if !e.OutOfBounds(canvas) {
		t.Error("shrinking the canvas should put the entity out of bounds")
	}
}

func TestRespawnRestoresStart(t *testing.T) {
	bounds := config.DefaultCrossingConfig().Bounds
	e := newEntity(KindHazard, mgl64.Vec2{-101, 55}, 100, 1, 0, SpriteBug, bounds)

	e.Move(2.5)
	e.Horiz, e.Vert = 0, -1
	e.Respawn()

	if e.Pos != e.Start() {
		t.Errorf("Pos = %v, want %v", e.Pos, e.Start())
	}
	if h, v := e.StartAxes(); e.Horiz != h || e.Vert != v {
		t.Errorf("axes = (%d,%d), want (%d,%d)", e.Horiz, e.Vert, h, v)
	}
}

func TestMoveIsContinuous(t *testing.T) {
	bounds := config.DefaultCrossingConfig().Bounds
	e := newEntity(KindHazard, mgl64.Vec2{0, 55}, 200, 1, 0, SpriteBug, bounds)

	e.Move(0.5)
	if e.X() != 100 || e.Y() != 55 {
		t.Errorf("after Move(0.5) pos = %v, want (100,55)", e.Pos)
	}
}

func TestNegativeSpeedClampedToZero(t *testing.T) {
	bounds := config.DefaultCrossingConfig().Bounds
	e := newEntity(KindHazard, mgl64.Vec2{0, 0}, -50, 1, 0, SpriteBug, bounds)
	if e.Speed != 0 {
		t.Errorf("Speed = %v, want 0", e.Speed)
	}
}

func TestCollidedWith(t *testing.T) {
	bounds := config.DefaultCrossingConfig().Bounds
	a := newEntity(KindDefault, mgl64.Vec2{100, 100}, 0, 0, 0, SpriteBug, bounds)

	tests := []struct {
		name  string
		other mgl64.Vec2
		want  bool
	}{
		{"same spot", mgl64.Vec2{100, 100}, true},
		{"inside both axes", mgl64.Vec2{124, 76}, true},
		{"exactly radius apart", mgl64.Vec2{125, 100}, false},
		{"close on x only", mgl64.Vec2{110, 200}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newEntity(KindDefault, tt.other, 0, 0, 0, SpriteBug, bounds)
			if got := a.CollidedWith(&b, 25); got != tt.want {
				t.Errorf("CollidedWith = %v, want %v", got, tt.want)
			}
			if got := b.CollidedWith(&a, 25); got != tt.want {
				t.Errorf("CollidedWith is not symmetric")
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindDefault:     "default",
		KindPlayer:      "player",
		KindHazard:      "hazard",
		KindCollectible: "collectible",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, token := range []string{"left", "right", "up", "down"} {
		d, ok := ParseDirection(token)
		if !ok || string(d) != token {
			t.Errorf("ParseDirection(%q) = %q, %v", token, d, ok)
		}
	}

	if d, ok := ParseDirection("jump"); ok || d != DirectionNone {
		t.Errorf("ParseDirection(jump) = %q, %v; want none", d, ok)
	}
}
