// Gem command toggles individual gem flags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gemCmd = &cobra.Command{
	Use:   "gem",
	Short: "Mark gems collected or not",
	Long: `Gem marks a single gem collected (set) or uncollected (clear) in one
play mode of one level. Flags in the other mode are never touched.

Valid modes: normal, nverted
Valid gems:  wumpa40, wumpa60, wumpa80, allCrates, deaths3OrLess, hiddenGem

Example:
  crashtrack gem set rude-awakening normal wumpa80
  crashtrack gem clear rude-awakening nverted hiddenGem`,
}

var gemSetCmd = &cobra.Command{
	Use:   "set <level-id> <mode> <gem>",
	Short: "Mark a gem collected",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGem(args, true)
	},
}

var gemClearCmd = &cobra.Command{
	Use:   "clear <level-id> <mode> <gem>",
	Short: "Mark a gem not collected",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGem(args, false)
	},
}

func init() {
	gemCmd.AddCommand(gemSetCmd)
	gemCmd.AddCommand(gemClearCmd)
}

func runGem(args []string, value bool) error {
	mode, err := parseMode(args[1])
	if err != nil {
		return err
	}
	key, err := parseGemKey(args[2])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.progress.SetGemFlag(args[0], mode, key, value); err != nil {
		return err
	}

	fmt.Printf("%s %s %s = %t\n", args[0], mode, key, value)
	return nil
}
