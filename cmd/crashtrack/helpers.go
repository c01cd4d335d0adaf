// Shared helpers for crashtrack CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wumpaworks/crashtrack/internal/backup"
	"github.com/wumpaworks/crashtrack/internal/paths"
	"github.com/wumpaworks/crashtrack/internal/prefs"
	"github.com/wumpaworks/crashtrack/internal/progress"
	"github.com/wumpaworks/crashtrack/internal/storage"
	"github.com/wumpaworks/crashtrack/pkg/types"
)

// app bundles the wired subsystems behind one open/close pair. Every
// command opens the app, does its work, and closes it.
type app struct {
	kv       *storage.Store
	progress *progress.Store
	prefs    *prefs.Prefs
	backups  *backup.Manager
	log      *log.Logger
}

// openApp resolves directories, opens storage, and wires the progress
// store, preferences, and backup manager. It also runs the daily
// automatic backup when one is due; a failed backup is logged and never
// blocks the command. The caller must defer Close.
func openApp() (*app, error) {
	logger := newLogger()

	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	kv, err := storage.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	store := progress.NewStore(kv, logger)
	store.Load()

	pr := prefs.New(kv, logger)
	codec := backup.NewCodec(appVersion, pr.DeviceID())

	backupDir := configBackupDir
	if backupDir == "" {
		backupDir = paths.AutoBackupDir(dataDir)
	}
	mgr := backup.NewManager(backupDir, kv, codec, logger, configMaxAutoBackups)

	a := &app{
		kv:       kv,
		progress: store,
		prefs:    pr,
		backups:  mgr,
		log:      logger,
	}
	a.maybeAutoBackup()
	return a, nil
}

// Close releases the underlying storage.
func (a *app) Close() error {
	return a.kv.Close()
}

// maybeAutoBackup runs the daily automatic backup when due.
func (a *app) maybeAutoBackup() {
	if !a.backups.AutoBackupDue() {
		return
	}
	if err := a.backups.CreateAutomaticBackup(a.progress.Snapshot(), a.prefs.Theme()); err != nil {
		a.log.Error("automatic backup failed", "err", err)
	}
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
}

// printJSON renders any value as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseMode accepts the short spellings used on the command line as
// well as the JSON field names.
func parseMode(s string) (types.Mode, error) {
	switch s {
	case "normal", string(types.ModeNormal):
		return types.ModeNormal, nil
	case "nverted", string(types.ModeNVerted):
		return types.ModeNVerted, nil
	}
	return "", fmt.Errorf("%w: %q (valid: normal, nverted)", types.ErrUnknownMode, s)
}

// validGemKeysStr is a comma-separated list of gem keys for error output.
var validGemKeysStr = func() string {
	names := make([]string, len(types.GemKeys))
	for i, k := range types.GemKeys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}()

func parseGemKey(s string) (types.GemKey, error) {
	for _, k := range types.GemKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", types.ErrUnknownGemKey, s, validGemKeysStr)
}
