// Backup command: create, list, inspect, restore, and prune backups.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wumpaworks/crashtrack/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage progress backups",
	Long: `Backup manages .crashbackup files. Automatic backups run once per day
in the background and the newest seven are retained; manual exports are
written wherever you point them and are never pruned.

Example:
  crashtrack backup now
  crashtrack backup export ~/Documents
  crashtrack backup list
  crashtrack backup stats backup.crashbackup
  crashtrack backup restore backup.crashbackup`,
}

var backupNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Create an automatic backup immediately",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.backups.CreateAutomaticBackup(a.progress.Snapshot(), a.prefs.Theme())
		})
	},
}

var backupExportCmd = &cobra.Command{
	Use:   "export <dest-dir>",
	Short: "Export a manual backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			path, err := a.backups.ExportBackup(a.progress.Snapshot(), a.prefs.Theme(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		})
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List backups, newest first",
	Long:  "List shows the automatic backup directory, or any directory of exported backups when one is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			infos := a.backups.ListAutomaticBackups()
			if len(args) == 1 {
				infos = a.backups.ListBackupsIn(args[0])
			}
			if flagJSON {
				return printJSON(infos)
			}
			for _, info := range infos {
				fmt.Printf("%-52s %-9s %s  %d bytes\n", info.Filename, info.BackupType, info.Timestamp, info.Size)
			}
			return nil
		})
	},
}

var backupStatsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Preview a backup file",
	Long:  "Stats validates a backup file and summarizes what restoring it would bring back.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			doc, err := a.backups.LoadBackup(args[0])
			if err != nil {
				return err
			}
			stats := backup.ComputeBackupStats(doc)
			if flagJSON {
				return printJSON(stats)
			}
			fmt.Printf("gems      %d/%d\n", stats.CollectedGems, stats.TotalGems)
			fmt.Printf("platinum  %d\n", stats.PlatinumCount)
			fmt.Printf("n.sanely  %d\n", stats.NSanelyCount)
			fmt.Printf("overall   %.1f%%\n", stats.CompletionPercentage)
			fmt.Printf("updated   %s\n", stats.LastUpdated)
			return nil
		})
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore progress from a backup file",
	Long: `Restore validates the backup file and replaces the tracked progress
and theme preference with its contents. Validation failures leave the
current progress untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			doc, err := a.backups.LoadBackup(args[0])
			if err != nil {
				return err
			}
			a.progress.Restore(doc.Progress)
			if err := a.prefs.SetTheme(doc.Theme); err != nil {
				return err
			}
			fmt.Printf("restored %d levels from %s\n", len(doc.Progress.Levels), args[0])
			return nil
		})
	},
}

var backupDeleteCmd = &cobra.Command{
	Use:   "delete <file>",
	Short: "Delete a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.backups.DeleteBackup(args[0])
		})
	},
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Prune old automatic backups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.backups.PruneOldBackups()
		})
	},
}

func init() {
	backupCmd.AddCommand(backupNowCmd)
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupStatsCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupDeleteCmd)
	backupCmd.AddCommand(backupPruneCmd)
}
