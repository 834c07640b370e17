package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-escape/internal/games/escape"
	"github.com/vovakirdan/maze-escape/internal/maze"
	"github.com/vovakirdan/maze-escape/internal/registry"
	"github.com/vovakirdan/maze-escape/internal/storage"
)

var (
	flagScoresLevel string
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best times for a mode",
	Long: `Display the best time per level for the given mode, the campaign
when omitted. With --level, list the fastest runs of that level.

Examples:
  maze scores
  maze scores maze_endless
  maze scores --level 02
  maze scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Show the top runs of one level")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded times and scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := escape.CampaignID
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		fail("unknown mode %q\nRun 'maze list' to see available modes.", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared all times for %s.\n", info.Title)
		return
	}

	if flagScoresLevel != "" {
		printLevelRuns(store, info, flagScoresLevel)
		return
	}

	bests, err := store.LevelsPlayed(gameID)
	if err != nil {
		fail("retrieving times: %v", err)
	}

	fmt.Printf("Best Times - %s\n", info.Title)
	fmt.Println()

	if len(bests) == 0 {
		fmt.Println("No escapes recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'maze play %s' to set the first time!\n", gameID)
		return
	}

	fmt.Printf("  %-8s  %-28s  %-6s  %-5s  %s\n", "Level", "Name", "Best", "Tier", "Clears")
	fmt.Printf("  %-8s  %-28s  %-6s  %-5s  %s\n", "-----", "----", "----", "----", "------")
	for _, b := range bests {
		fmt.Printf("  %-8s  %-28s  %-6s  %-5s  %d\n",
			b.LevelID, b.Label, clock(b.Seconds), maze.ParseTier(b.Tier).Symbol(), b.Clears)
	}

	fmt.Println()
	if stats, err := store.RunStats(gameID); err == nil {
		fmt.Printf("Clears: %d   Three-star: %d   Time played: %s\n",
			stats.Clears, stats.TopTier, clock(stats.TotalSeconds))
	}
	if high, err := store.HighScore(gameID); err == nil && high > 0 {
		fmt.Printf("Best score: %d\n", high)
	}
}

func printLevelRuns(store *storage.Store, info registry.GameInfo, levelID string) {
	runs, err := store.BestRuns(info.ID, levelID, 10)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("Fastest Runs - %s, level %s\n", info.Title, levelID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No escapes recorded for this level.")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-12s  %s\n", "Rank", "Time", "Tier", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-12s  %s\n", "----", "----", "----", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-6s  %-5s  %-12s  %s\n",
			i+1, clock(r.Seconds), maze.ParseTier(r.Tier).Symbol(), player, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// clock formats seconds as m:ss.
func clock(s int) string {
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
