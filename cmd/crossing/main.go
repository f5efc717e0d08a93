// crossing is a terminal lane-crossing arcade game: hop across lanes of
// crawling bugs, grab gems and reach the water.
//
// Usage:
//
//	crossing list              - List games and selectable characters
//	crossing play              - Play (character picker unless --character is set)
//	crossing menu              - Menu loop with character picker and scoreboard
//	crossing serve             - Start SSH server for remote play
//	crossing scores            - Show high scores
//	crossing config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.crossing/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--log-file <path>    - Write logs to a file (the TUI owns the terminal)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bug-crossing/internal/games/crossing"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Bug Crossing - a lane-crossing arcade game for your terminal",
	Long: `Bug Crossing is a terminal arcade game. Hop your character across
lanes of crawling bugs, collect gems and reach the water. Bank 100 points
and a door opens that ends the run with a bonus.

Available commands:
  list     - Show games and characters
  play     - Play directly
  menu     - Interactive character picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration

Examples:
  crossing play --character princess
  crossing menu
  crossing serve --ssh :2222
  crossing scores --character cat`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Game settings are package-level so every new instance picks them up
		crossing.SetConfigPath(flagConfig)
		crossing.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossing/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
