package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bug-crossing/internal/core"
	"github.com/vovakirdan/bug-crossing/internal/games/crossing"
	"github.com/vovakirdan/bug-crossing/internal/platform/tui"
	"github.com/vovakirdan/bug-crossing/internal/registry"
	"github.com/vovakirdan/bug-crossing/internal/storage"
)

var flagCharacter string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bug Crossing",
	Long: `Start a run. Without --character a character picker is shown first.

Controls:
  Arrows/WASD/hjkl - Hop one tile
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Back to menu (paused or game over)
  Ctrl+S           - Save a screenshot to ~/.crossing/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow bugs, 5 lives
  normal - Faster bugs, 3 lives
  hard   - Fast bugs, 2 lives

Examples:
  crossing play
  crossing play --character princess
  crossing play --difficulty hard
  crossing play --config ./my-crossing.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagCharacter, "character", "", "Character to play (see 'crossing list')")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := runtimeConfig()

	// Pick the character first unless given on the command line
	character := flagCharacter
	if character == "" {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if result.Quit || result.WantsScoreboard || result.GameID == "" {
			return
		}
		cfg = result.Config
		character = result.Character
	} else if !validCharacter(character) {
		fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", character)
		fmt.Fprintln(os.Stderr, "Run 'crossing list' to see available characters.")
		os.Exit(1)
	}

	// Create game instance
	game, err := newGame(character)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustOpenLogger()
	defer closeLog()

	// Open score storage
	store := openStore()

	// Run the game
	_, runErr := tui.Run(game, store, logger, cfg, localPlayer())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newGame creates the crossing game with the given character.
func newGame(character string) (registry.Game, error) {
	game, err := registry.Create(crossing.GameID)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Customizable); ok && character != "" {
		c.SetCharacter(character)
	}
	return game, nil
}

// validCharacter reports whether name is a selectable character.
func validCharacter(name string) bool {
	for _, c := range crossing.Characters() {
		if c.Name == name {
			return true
		}
	}
	return false
}

// openStore opens the scores database, or returns nil so the game still
// runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// localPlayer names local runs after the OS user.
func localPlayer() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
