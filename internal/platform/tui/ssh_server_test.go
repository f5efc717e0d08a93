package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bug-crossing/internal/core"
	"github.com/vovakirdan/bug-crossing/internal/games/crossing"
	"github.com/vovakirdan/bug-crossing/internal/registry"
)

func sendSession(m SessionModel, msg tea.Msg) SessionModel {
	updated, _ := m.Update(msg)
	return updated.(SessionModel)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, nil, core.DefaultConfig(), "ann")

	// Pick the second entry
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.gameModel == nil {
		t.Fatal("selecting an entry should start a game")
	}
	c, ok := m.gameModel.game.(registry.Customizable)
	if !ok {
		t.Fatal("crossing game should support characters")
	}
	if want := m.menu.items[1].Character; c.Character() != want {
		t.Errorf("character = %q, want %q", c.Character(), want)
	}

	m = sendSession(m, TickMsg(time.Now()))
	g := m.gameModel.game.(*crossing.Game)
	s := g.Session()
	s.Player().Lives = 1
	s.Player().Die(s)
	m = sendSession(m, TickMsg(time.Now()))
	m = sendSession(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})

	if m.gameModel != nil {
		t.Error("back after game over should return to the menu")
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, nil, core.DefaultConfig(), "ann")

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard should render")
	}

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("esc should close the scoreboard")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, nil, core.DefaultConfig(), "ann")

	m = sendSession(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.quitting {
		t.Error("q should quit the session")
	}
}
