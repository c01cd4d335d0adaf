// Relic command edits N.Sanely Perfect relic records.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var relicCmd = &cobra.Command{
	Use:   "relic",
	Short: "Track N.Sanely Perfect relics",
	Long: `Relic edits the N.Sanely Perfect relic record of a level: completion,
attempt count, difficulty rating, and notes. Relic runs carry no best
time; the relic is pass or fail.

Example:
  crashtrack relic complete rude-awakening
  crashtrack relic attempts rude-awakening +5
  crashtrack relic difficulty rude-awakening 10`,
}

var relicCompleteCmd = &cobra.Command{
	Use:   "complete <level-id>",
	Short: "Mark the relic earned",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			if err := a.progress.SetRelicCompletion(args[0], true); err != nil {
				return err
			}
			fmt.Printf("%s n.sanely relic earned\n", args[0])
			return nil
		})
	},
}

var relicUncompleteCmd = &cobra.Command{
	Use:   "uncomplete <level-id>",
	Short: "Mark the relic not earned",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			if err := a.progress.SetRelicCompletion(args[0], false); err != nil {
				return err
			}
			fmt.Printf("%s n.sanely relic reopened\n", args[0])
			return nil
		})
	},
}

var relicAttemptsCmd = &cobra.Command{
	Use:   "attempts <level-id> <delta>",
	Short: "Adjust the attempt counter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid delta %q (expected an integer)", args[1])
		}
		return withApp(func(a *app) error {
			return a.progress.AdjustRelicAttempts(args[0], delta)
		})
	},
}

var relicDifficultyCmd = &cobra.Command{
	Use:   "difficulty <level-id> <1-10>",
	Short: "Rate the relic difficulty",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid difficulty %q (expected an integer)", args[1])
		}
		return withApp(func(a *app) error {
			return a.progress.SetRelicDifficulty(args[0], rating)
		})
	},
}

var relicDateCmd = &cobra.Command{
	Use:   "date <level-id> <YYYY-MM-DD>",
	Short: "Backdate the completion date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.Parse("2006-01-02", args[1])
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", args[1])
		}
		return withApp(func(a *app) error {
			return a.progress.SetRelicDate(args[0], date)
		})
	},
}

var relicNoteCmd = &cobra.Command{
	Use:   "note <level-id> <text...>",
	Short: "Attach a note to the relic",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.progress.SetRelicNote(args[0], strings.Join(args[1:], " "))
		})
	},
}

var relicClearNoteCmd = &cobra.Command{
	Use:   "clear-note <level-id>",
	Short: "Remove the relic note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.progress.ClearRelicNote(args[0])
		})
	},
}

var relicResetCmd = &cobra.Command{
	Use:   "reset <level-id>",
	Short: "Wipe the relic record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.progress.ResetRelic(args[0])
		})
	},
}

func init() {
	relicCmd.AddCommand(relicCompleteCmd)
	relicCmd.AddCommand(relicUncompleteCmd)
	relicCmd.AddCommand(relicAttemptsCmd)
	relicCmd.AddCommand(relicDifficultyCmd)
	relicCmd.AddCommand(relicDateCmd)
	relicCmd.AddCommand(relicNoteCmd)
	relicCmd.AddCommand(relicClearNoteCmd)
	relicCmd.AddCommand(relicResetCmd)
}
