package crossing

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bug-crossing/internal/config"
	"github.com/vovakirdan/bug-crossing/internal/core"
	"github.com/vovakirdan/bug-crossing/internal/registry"
)

// GameID is the registry and score-table identifier of the game.
const GameID = "crossing"

// HUD layout
const (
	hudRows    = 1
	footerRows = 1
	heartChar  = "♥"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Session to the arcade platform: it maps input frames to
// direction tokens, runs one session update per tick and draws the board.
type Game struct {
	session   *Session
	runtime   core.RuntimeConfig
	cfg       config.CrossingConfig
	character string
	paused    bool
	gameOver  bool
	status    string // Last notification text
	statusCue Cue
	tickCount int
}

// New creates a new Bug Crossing game instance.
func New() *Game {
	return &Game{character: Characters()[0].Name}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bug Crossing"
}

// Characters implements registry.Customizable.
func (g *Game) Characters() []registry.Option {
	chars := Characters()
	opts := make([]registry.Option, len(chars))
	for i, c := range chars {
		opts[i] = registry.Option{Name: c.Name, Title: c.Title}
	}
	return opts
}

// SetCharacter implements registry.Customizable. It takes effect on the
// next Reset.
func (g *Game) SetCharacter(name string) {
	g.character = name
}

// Character implements registry.Customizable.
func (g *Game) Character() string {
	return g.character
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		cfg = config.DefaultCrossingConfig()
	}

	// Apply difficulty preset if set
	config.ApplyCrossingPreset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.paused = false
	g.gameOver = false
	g.status = "Cross the bugs and reach the water!"
	g.statusCue = ""
	g.tickCount = 0

	canvas := FixedCanvas{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}
	g.session = NewSession(cfg, canvas, runtime.Seed, CharacterSprite(g.character), Hooks{
		Notify: g.onNotify,
		End:    g.onEnd,
	})
}

// Session returns the running simulation.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) onNotify(cue Cue, text string) {
	g.status = text
	g.statusCue = cue
}

func (g *Game) onEnd(_ int) {
	g.gameOver = true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if d := directionFor(in.Move); d != DirectionNone {
		g.session.QueueInput(d)
	}
	g.session.Update(g.runtime.FrameDelta())

	return core.StepResult{State: g.State()}
}

// directionFor maps a platform action to a direction token.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionLeft:
		return DirectionLeft
	case core.ActionRight:
		return DirectionRight
	case core.ActionUp:
		return DirectionUp
	case core.ActionDown:
		return DirectionDown
	default:
		return DirectionNone
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	layout := newBoardLayout(dst, g.cfg.Canvas, hudRows, footerRows)
	layout.drawTerrain(dst)
	g.session.Render(screenRenderer{dst: dst, layout: layout})

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R: restart  B: menu", g.session.Score()))
	}
}

// drawHUD renders score, lives and the latest notification.
func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", g.session.Score())
	dst.DrawText(1, 0, scoreText)

	lives := strings.Repeat(heartChar, g.session.Player().Lives)
	livesX := 1 + len(scoreText) + 1
	dst.DrawTextColored(livesX, 0, lives, core.ColorRed)

	statusX := livesX + g.cfg.Player.Lives + 2
	dst.DrawTextColored(statusX, 0, g.status, cueColor(g.statusCue))

	if g.session.GoalOpen() {
		door := " DOOR OPEN "
		dst.DrawTextColored(dst.Width()-len(door)-1, 0, door, core.ColorMagenta)
	}

	help := "Arrows/WASD: hop  P: pause  Q: quit"
	dst.DrawTextColored(1, dst.Height()-1, help, core.ColorGray)
}

// cueColor picks the status line color for a cue.
func cueColor(c Cue) core.Color {
	switch c {
	case CueWin:
		return core.ColorBrightGreen
	case CueDie:
		return core.ColorBrightRed
	case CueCollect:
		return core.ColorBrightYellow
	case CueGoalOpen:
		return core.ColorBrightMagenta
	default:
		return core.ColorDefault
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    g.session.Player().Lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
