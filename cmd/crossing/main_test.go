package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/bug-crossing/internal/games/crossing"
	"github.com/vovakirdan/bug-crossing/internal/registry"
)

func TestValidCharacter(t *testing.T) {
	for _, c := range crossing.Characters() {
		if !validCharacter(c.Name) {
			t.Errorf("validCharacter(%q) = false", c.Name)
		}
	}
	if validCharacter("dragon") {
		t.Error("validCharacter(dragon) = true")
	}
}

func TestNewGameSetsCharacter(t *testing.T) {
	game, err := newGame("horn")
	if err != nil {
		t.Fatalf("newGame() failed: %v", err)
	}
	c, ok := game.(registry.Customizable)
	if !ok {
		t.Fatal("game should be customizable")
	}
	if c.Character() != "horn" {
		t.Errorf("Character() = %q, want horn", c.Character())
	}
}

func TestOpenLogger(t *testing.T) {
	logger, closer, err := openLogger("")
	if logger != nil || closer != nil || err != nil {
		t.Error("empty path should disable logging")
	}

	path := filepath.Join(t.TempDir(), "logs", "crossing.log")
	logger, closer, err = openLogger(path)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	defer closer.Close()
	if logger == nil {
		t.Error("logger should be created")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"list", "play", "menu", "serve", "scores", "config"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}
