// Trial command edits platinum time trial records.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var trialCmd = &cobra.Command{
	Use:   "trial",
	Short: "Track platinum time trials",
	Long: `Trial edits the platinum time trial record of a level: completion,
best time, attempt count, difficulty rating, and notes.

Example:
  crashtrack trial complete rude-awakening
  crashtrack trial time rude-awakening 01:23.456
  crashtrack trial attempts rude-awakening +3
  crashtrack trial difficulty rude-awakening 8
  crashtrack trial note rude-awakening slide spam the last stretch`,
}

var trialCompleteCmd = &cobra.Command{
	Use:   "complete <level-id>",
	Short: "Mark the trial completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			if err := a.progress.SetTrialCompletion(args[0], true); err != nil {
				return err
			}
			fmt.Printf("%s platinum trial completed\n", args[0])
			return nil
		})
	},
}

var trialUncompleteCmd = &cobra.Command{
	Use:   "uncomplete <level-id>",
	Short: "Mark the trial not completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			if err := a.progress.SetTrialCompletion(args[0], false); err != nil {
				return err
			}
			fmt.Printf("%s platinum trial reopened\n", args[0])
			return nil
		})
	},
}

var trialTimeCmd = &cobra.Command{
	Use:   "time <level-id> <MM:SS.mmm>",
	Short: "Record the best trial time",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			if err := a.progress.SetTrialTime(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("%s best time %s\n", args[0], args[1])
			return nil
		})
	},
}

var trialAttemptsCmd = &cobra.Command{
	Use:   "attempts <level-id> <delta>",
	Short: "Adjust the attempt counter",
	Long:  "Attempts adjusts the trial attempt counter by a signed delta, never dropping below zero.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid delta %q (expected an integer)", args[1])
		}
		return withApp(func(a *app) error {
			return a.progress.AdjustTrialAttempts(args[0], delta)
		})
	},
}

var trialDifficultyCmd = &cobra.Command{
	Use:   "difficulty <level-id> <1-10>",
	Short: "Rate the trial difficulty",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid difficulty %q (expected an integer)", args[1])
		}
		return withApp(func(a *app) error {
			return a.progress.SetTrialDifficulty(args[0], rating)
		})
	},
}

var trialDateCmd = &cobra.Command{
	Use:   "date <level-id> <YYYY-MM-DD>",
	Short: "Backdate the completion date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.Parse("2006-01-02", args[1])
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", args[1])
		}
		return withApp(func(a *app) error {
			return a.progress.SetTrialDate(args[0], date)
		})
	},
}

var trialNoteCmd = &cobra.Command{
	Use:   "note <level-id> <text...>",
	Short: "Attach a note to the trial",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.progress.SetTrialNote(args[0], strings.Join(args[1:], " "))
		})
	},
}

var trialClearNoteCmd = &cobra.Command{
	Use:   "clear-note <level-id>",
	Short: "Remove the trial note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.progress.ClearTrialNote(args[0])
		})
	},
}

var trialResetCmd = &cobra.Command{
	Use:   "reset <level-id>",
	Short: "Wipe the trial record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.progress.ResetTrial(args[0])
		})
	},
}

func init() {
	trialCmd.AddCommand(trialCompleteCmd)
	trialCmd.AddCommand(trialUncompleteCmd)
	trialCmd.AddCommand(trialTimeCmd)
	trialCmd.AddCommand(trialAttemptsCmd)
	trialCmd.AddCommand(trialDifficultyCmd)
	trialCmd.AddCommand(trialDateCmd)
	trialCmd.AddCommand(trialNoteCmd)
	trialCmd.AddCommand(trialClearNoteCmd)
	trialCmd.AddCommand(trialResetCmd)
}

// withApp opens the app, runs fn, and closes the app.
func withApp(fn func(a *app) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
