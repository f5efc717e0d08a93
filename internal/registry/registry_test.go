package registry

import (
	"testing"

	"github.com/vovakirdan/bug-crossing/internal/core"
)

type stubGame struct {
	character string
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Characters() []Option { return []Option{{Name: "a", Title: "A"}} }
func (g *stubGame) SetCharacter(name string) { g.character = name }
func (g *stubGame) Character() string { return g.character }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-test", func() Game { return &stubGame{} })

	if !Exists("stub-test") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("stub-test")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title = %q, want Stub", g.Title())
	}

	var found bool
	for _, info := range List() {
		if info.ID != "stub-test" {
			continue
		}
		found = true
		if len(info.Characters) != 1 || info.Characters[0].Name != "a" {
			t.Errorf("characters = %v, want [a]", info.Characters)
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{} })
}
