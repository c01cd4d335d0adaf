// Show command prints tracked progress for one level or all of them.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wumpaworks/crashtrack/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show [level-id]",
	Short: "Show tracked progress",
	Long: `Show prints the tracked progress for a single level, or a one-line
summary per level when no level ID is given.

Example:
  crashtrack show
  crashtrack show rude-awakening
  crashtrack show --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	snap := a.progress.Snapshot()

	if len(args) == 0 {
		if flagJSON {
			return printJSON(snap)
		}
		for _, l := range snap.Levels {
			fmt.Printf("%-28s %-22s %5.1f%%\n", l.ID, l.Dimension, l.Progress.CompletionFraction()*100)
		}
		return nil
	}

	level, ok := snap.Level(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrLevelNotFound, args[0])
	}
	if flagJSON {
		return printJSON(level)
	}

	fmt.Printf("%s (%s)\n", level.Name, level.Dimension)
	printGemSet("normal", level.Progress.NormalMode)
	printGemSet("nverted", level.Progress.NVertedMode)
	printChallenge("platinum trial", level.Progress.PlatinumTimeTrial)
	printChallenge("n.sanely relic", level.Progress.NSanelyPerfectRelic)
	return nil
}

func printGemSet(label string, gems types.GemSet) {
	fmt.Printf("  %-15s %d/%d gems:", label, gems.Count(), types.GemsPerMode)
	for _, key := range types.GemKeys {
		if on, err := gems.Flag(key); err == nil && on {
			fmt.Printf(" %s", key)
		}
	}
	fmt.Println()
}

func printChallenge(label string, rec types.ChallengeRecord) {
	status := "open"
	if rec.Completed {
		status = "done " + rec.CompletionDate
	}
	fmt.Printf("  %-15s %s", label, status)
	if rec.Time != "" {
		fmt.Printf("  best %s", rec.Time)
	}
	if rec.Attempts > 0 {
		fmt.Printf("  attempts %d", rec.Attempts)
	}
	if rec.Difficulty > 0 {
		fmt.Printf("  difficulty %d/10", rec.Difficulty)
	}
	if rec.Note != "" {
		fmt.Printf("  note %q", rec.Note)
	}
	fmt.Println()
}
