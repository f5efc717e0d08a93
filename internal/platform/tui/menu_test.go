package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bug-crossing/internal/core"
	"github.com/vovakirdan/bug-crossing/internal/registry"
)

func TestMenuItemsExpandCharacters(t *testing.T) {
	games := []registry.GameInfo{
		{ID: "crossing", Title: "Bug Crossing", Characters: []registry.Option{
			{Name: "boy", Title: "Boy"},
			{Name: "cat", Title: "Cat Girl"},
		}},
	}

	items := menuItems(games)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[1].GameID != "crossing" || items[1].Character != "cat" || items[1].Title != "Cat Girl" {
		t.Errorf("second item = %+v", items[1])
	}

	games = append(games, registry.GameInfo{ID: "other", Title: "Other"})
	items = menuItems(games)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].Title != "Bug Crossing: Boy" {
		t.Errorf("titles should carry the game name with several games, got %q", items[0].Title)
	}
	if items[2].Character != "" {
		t.Errorf("game without characters should have no character, got %q", items[2].Character)
	}
}

func TestMenuSelect(t *testing.T) {
	m := MenuModel{
		items: []MenuItem{
			{GameID: "crossing", Title: "Boy", Character: "boy"},
			{GameID: "crossing", Title: "Princess", Character: "princess"},
		},
		config:    core.DefaultConfig(),
		width:     80,
		keyMapper: NewKeyMapper(),
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(MenuModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // Clamped at the last entry
	m = updated.(MenuModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(MenuModel)

	if m.Selected() == nil || m.Selected().Character != "princess" {
		t.Errorf("selected = %+v, want princess", m.Selected())
	}
}

func TestMenuScoreboard(t *testing.T) {
	m := MenuModel{keyMapper: NewKeyMapper()}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !updated.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}
