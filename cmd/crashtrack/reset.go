// Reset command wipes all tracked progress.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all tracked progress",
	Long: `Reset deletes the stored progress document and starts over from a
blank level catalog. The wipe is irreversible; restore from a backup if
you change your mind. Requires --force.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagForce {
			return fmt.Errorf("refusing to wipe progress without --force")
		}
		return withApp(func(a *app) error {
			a.progress.ResetAll()
			fmt.Println("progress reset")
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().BoolVar(&flagForce, "force", false, "confirm the wipe")
}
