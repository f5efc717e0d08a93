package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bug-crossing/internal/games/crossing"
	"github.com/vovakirdan/bug-crossing/internal/storage"
)

var (
	flagLimit          int
	flagScoreCharacter string
	flagStats          bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores, optionally for a single character.

Examples:
  crossing scores
  crossing scores --limit 25
  crossing scores --character cat
  crossing scores --stats`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoreCharacter, "character", "", "Only show runs of this character")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-character statistics instead")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagScoreCharacter != "" && !validCharacter(flagScoreCharacter) {
		fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", flagScoreCharacter)
		fmt.Fprintln(os.Stderr, "Run 'crossing list' to see available characters.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStats {
		printStats(store)
		return
	}

	// Get top scores
	var scores []storage.ScoreEntry
	if flagScoreCharacter != "" {
		scores, err = store.TopScoresByCharacter(crossing.GameID, flagScoreCharacter, flagLimit)
	} else {
		scores, err = store.TopScores(crossing.GameID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Println("High Scores - Bug Crossing")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crossing play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %-10s  %s\n", "Rank", "Score", "Player", "Character", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-10s  %s\n", "----", "-----", "------", "---------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-12s  %-10s  %s\n", i+1, entry.Score, orDash(entry.Player), orDash(entry.Character), dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(crossing.GameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

// printStats prints aggregated statistics per character.
func printStats(store *storage.Store) {
	total, err := store.GetGameStats(crossing.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	perCharacter, err := store.GetCharacterStats(crossing.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bug Crossing - %d runs, best %d, average %.1f\n", total.GamesCount, total.HighScore, total.AvgScore)
	if !total.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", total.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()

	fmt.Printf("  %-10s  %-5s  %-6s  %s\n", "Character", "Runs", "Best", "Average")
	fmt.Printf("  %-10s  %-5s  %-6s  %s\n", "---------", "----", "----", "-------")
	for _, c := range crossing.Characters() {
		st, ok := perCharacter[c.Name]
		if !ok {
			fmt.Printf("  %-10s  %-5d  %-6s  %s\n", c.Name, 0, "-", "-")
			continue
		}
		fmt.Printf("  %-10s  %-5d  %-6d  %.1f\n", c.Name, st.GamesCount, st.HighScore, st.AvgScore)
	}
}

// orDash shows empty columns as a dash.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
