// Root command for the crashtrack CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/wumpaworks/crashtrack/internal/paths"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir        string
	configBackupDir      string
	configMaxAutoBackups int
)

var rootCmd = &cobra.Command{
	Use:          "crashtrack",
	Short:        "Crashtrack is a Crash Bandicoot 4 completion tracker",
	Version:      appVersion,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackupDir = cfg.GetString(cfgKeyBackupDir)
		configMaxAutoBackups = cfg.GetInt(cfgKeyMaxAutoBackups)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(gemCmd)
	rootCmd.AddCommand(trialCmd)
	rootCmd.AddCommand(relicCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(backupCmd)
}

// resolveDataDir returns the data directory path following the
// precedence: --data-dir flag > config.yaml data_dir >
// CRASHTRACK_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > CRASHTRACK_CONFIG_DIR env > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
