package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/power-crisis/internal/games/powercrisis"
	"github.com/vovakirdan/power-crisis/internal/registry"
	"github.com/vovakirdan/power-crisis/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best runs",
	Long: `Display the longest runs for a variant, or the most recent runs
across all variants with --recent.

Examples:
  powercrisis scores
  powercrisis scores powercrisis_manual --limit 20
  powercrisis scores --recent
  powercrisis scores powercrisis --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs of every variant")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the stored runs of the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := powercrisis.IDAuto
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'powercrisis list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s.\n", gameID)
		return
	}

	var runs []storage.Run
	if flagScoresRecent {
		fmt.Println("Recent runs")
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		game, _ := registry.Create(gameID) // existence checked above
		fmt.Printf("Best runs - %s\n", game.Title())
		runs, err = store.TopRuns(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'powercrisis play %s' to set the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %-10s  %-10s  %-12s  %s\n",
		"Rank", "Time", "Repairs", "Failures", "Map", "Difficulty", "Player", "Date")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-7d  %-8d  %-10s  %-10s  %-12s  %s\n",
			i+1, fmt.Sprintf("%.1fs", r.Seconds), r.Repairs, r.Failures,
			r.Level, r.Difficulty, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagScoresRecent {
		return
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %ds  Average: %.1fs  Repairs: %d  Failures: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalRepairs, stats.TotalFailures)
	}
}
