// Theme command reads and writes the theme preference.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wumpaworks/crashtrack/pkg/types"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the theme preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			fmt.Println(a.prefs.Theme())
			return nil
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set <light|dark|auto>",
	Short: "Set the theme preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.prefs.SetTheme(types.ThemeMode(args[0]))
		})
	},
}

func init() {
	themeCmd.AddCommand(themeSetCmd)
}
