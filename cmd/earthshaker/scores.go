package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker"
	"github.com/Aleks-Che/earth-shaker-zx/internal/registry"
	"github.com/Aleks-Che/earth-shaker-zx/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign]",
	Short: "Show high scores and best level times",
	Long: `Display the top 10 runs and the fastest clear of every level
for the specified campaign (default: earthshaker).

Examples:
  earthshaker scores
  earthshaker scores earthshaker_classic
  earthshaker scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the campaign's scores and level times")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := earthshaker.IDCaves
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown campaign %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'earthshaker list' to see available campaigns.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	if err := printScores(store, gameID, title); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'earthshaker play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.BestLevelResults(gameID)
	if err != nil {
		return err
	}
	if len(best) > 0 {
		fmt.Println()
		fmt.Println("Best Times")
		fmt.Println()
		fmt.Printf("  %-5s  %-8s  %-8s  %s\n", "Level", "Time", "Crystals", "Mode")
		fmt.Printf("  %-5s  %-8s  %-8s  %s\n", "-----", "----", "--------", "----")
		for _, r := range best {
			mode := "grid"
			if r.Smooth {
				mode = "smooth"
			}
			fmt.Printf("  %-5d  %-8s  %-8d  %s\n", r.Level, fmt.Sprintf("%.1fs", r.Seconds), r.Crystals, mode)
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Furthest level: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	return nil
}
