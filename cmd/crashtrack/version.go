// Version command for the crashtrack CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// appVersion is stamped into backup metadata as appVersion.
const appVersion = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the crashtrack version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("crashtrack", appVersion)
	},
}
