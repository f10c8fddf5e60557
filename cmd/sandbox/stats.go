package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/platform/tui"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
	"github.com/vovakirdan/tui-sandbox/internal/storage"
)

var (
	flagStatsLimit  int
	flagStatsBrowse bool
	flagStatsClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [level]",
	Short: "Show the run history",
	Long: `Display statistics and the latest runs of a level, or a summary
of every played level when no level is given.

Examples:
  sandbox stats
  sandbox stats platformer --limit 20
  sandbox stats --browse
  sandbox stats bouncers --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of runs to list")
	statsCmd.Flags().BoolVar(&flagStatsBrowse, "browse", false, "Open the interactive run browser")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete the runs of the level")
}

func runStats(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	switch {
	case flagStatsBrowse:
		cfg := runtimeConfig()
		quietLogs()
		_, err := tui.RunRuns(store, levelID, cfg.ScreenW, cfg.ScreenH)
		return err

	case flagStatsClear:
		if levelID == "" {
			return fmt.Errorf("--clear needs a level")
		}
		if err := store.ClearRuns(levelID); err != nil {
			return err
		}
		fmt.Printf("Cleared the runs of %s.\n", levelID)
		return nil

	case levelID == "":
		return printAllStats(store)
	}

	return printLevelStats(store, levelID)
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllLevelStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %6s  %10s  %10s  %s\n", "Level", "Runs", "Frames", "Sim time", "Last played")
	fmt.Printf("  %-16s  %6s  %10s  %10s  %s\n", "-----", "----", "------", "--------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-16s  %6d  %10d  %9.1fs  %s\n",
			id, s.Runs, s.TotalFrames, s.TotalSimTime, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printLevelStats(store *storage.Store, levelID string) error {
	title := levelID
	if game, err := registry.Create(levelID); err == nil {
		title = game.Title()
	}

	stats, err := store.GetLevelStats(levelID)
	if err != nil {
		return err
	}

	fmt.Printf("Runs - %s\n", title)
	fmt.Println()

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sandbox play %s' to record one!\n", levelID)
		return nil
	}

	runs, err := store.RecentRuns(levelID, flagStatsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("  %-6s  %8s  %8s  %8s  %-8s  %s\n", "ID", "Frames", "Sim", "Wall", "Source", "Date")
	fmt.Printf("  %-6s  %8s  %8s  %8s  %-8s  %s\n", "--", "------", "---", "----", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-6d  %8d  %7.1fs  %7.1fs  %-8s  %s\n",
			r.ID, r.Frames, r.SimSeconds, r.WallSeconds, r.Source, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Total: %d runs, %d frames, %.1fs simulated (longest %.1fs)\n",
		stats.Runs, stats.TotalFrames, stats.TotalSimTime, stats.LongestSimTime)
	return nil
}
