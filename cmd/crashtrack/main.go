// Package main provides the crashtrack CLI, a Crash Bandicoot 4
// completion tracker with local progress storage and file backups.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/wumpaworks/crashtrack/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "crashtrack:", err)
		os.Exit(exitCode(err))
	}
}

// userErrors are rejections of the user's input rather than system
// failures; they exit with exitUserError.
var userErrors = []error{
	types.ErrLevelNotFound,
	types.ErrUnknownMode,
	types.ErrUnknownGemKey,
	types.ErrDifficultyRange,
	types.ErrEmptyNote,
	types.ErrInvalidTrialTime,
	types.ErrUnknownTheme,
	types.ErrInvalidBackup,
	types.ErrBackupDecode,
}

func exitCode(err error) int {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}
