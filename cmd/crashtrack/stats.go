// Stats command computes completion statistics from the live snapshot.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wumpaworks/crashtrack/internal/catalog"
	"github.com/wumpaworks/crashtrack/pkg/types"
)

var flagDimensions bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics",
	Long: `Stats recomputes completion statistics from the tracked progress:
collected gems, platinum time trials, N.Sanely Perfect relics, and the
overall completion percentage.

Example:
  crashtrack stats
  crashtrack stats --dimensions`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagDimensions, "dimensions", false, "break gem progress down per dimension")
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	snap := a.progress.Snapshot()
	stats := types.ComputeStats(snap)

	if flagDimensions {
		dims := types.ComputeDimensionStats(snap, catalog.Dimensions)
		if flagJSON {
			return printJSON(struct {
				Overall    types.CompletionStats  `json:"overall"`
				Dimensions []types.DimensionStats `json:"dimensions"`
			}{stats, dims})
		}
		printOverall(stats)
		fmt.Println()
		for _, d := range dims {
			fmt.Printf("%-26s %3d/%-3d %5.1f%%\n", d.Dimension, d.CollectedGems, d.TotalGems, d.CompletionPercentage)
		}
		return nil
	}

	if flagJSON {
		return printJSON(stats)
	}
	printOverall(stats)
	return nil
}

func printOverall(stats types.CompletionStats) {
	fmt.Printf("gems      %d/%d (%.1f%%)\n", stats.CollectedGems, stats.TotalGems, stats.GemPercentage)
	fmt.Printf("platinum  %d/%d\n", stats.PlatinumCompletions, types.TotalLevels)
	fmt.Printf("n.sanely  %d/%d\n", stats.NSanelyCompletions, types.TotalLevels)
	fmt.Printf("overall   %.1f%%\n", stats.OverallPercentage)
}
