package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wumpaworks/crashtrack/internal/storage"
	"github.com/wumpaworks/crashtrack/pkg/types"
)

const (
	// DefaultMaxAutoBackups bounds the automatic backup directory.
	DefaultMaxAutoBackups = 7

	// FileExt is the backup file extension, automatic and manual alike.
	FileExt = ".crashbackup"

	filePrefix    = "crash_backup_"
	lastBackupKey = "@CrashTracker:lastBackupTime"

	// One automatic backup per day.
	autoBackupInterval = 24 * time.Hour

	// Filename timestamps are the RFC 3339 UTC time with colons and
	// dots flattened to dashes and the sub-second fragment dropped.
	fileTimestampLayout = "2006-01-02T15-04-05"
)

// Manager owns the automatic backup cadence and the bounded automatic
// backup directory. Manual exports written elsewhere are never pruned.
type Manager struct {
	dir         string
	kv          *storage.Store
	codec       *Codec
	log         *log.Logger
	maxRetained int
	now         func() time.Time
}

// NewManager creates a retention manager writing automatic backups to
// dir. A non-positive maxRetained falls back to DefaultMaxAutoBackups.
func NewManager(dir string, kv *storage.Store, codec *Codec, logger *log.Logger, maxRetained int) *Manager {
	if maxRetained <= 0 {
		maxRetained = DefaultMaxAutoBackups
	}
	return &Manager{
		dir:         dir,
		kv:          kv,
		codec:       codec,
		log:         logger,
		maxRetained: maxRetained,
		now:         time.Now,
	}
}

// AutoBackupDue reports whether a daily automatic backup should run:
// true when no backup timestamp is stored or at least 24 hours have
// passed. A failed or unparsable read also reports true; an extra
// backup beats a missed one.
func (m *Manager) AutoBackupDue() bool {
	raw, err := m.kv.Get(lastBackupKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			m.log.Warn("failed to read last backup time", "err", err)
		}
		return true
	}
	last, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		m.log.Warn("stored last backup time is unreadable", "value", raw)
		return true
	}
	return m.now().Sub(last) >= autoBackupInterval
}

// CreateAutomaticBackup encodes the snapshot, writes it to the
// automatic backup directory, records the backup time, and prunes old
// entries. The returned error is non-fatal to callers; startup logs it
// and moves on.
func (m *Manager) CreateAutomaticBackup(snap types.ProgressSnapshot, theme types.ThemeMode) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("creating backup dir: %w", err)
	}

	doc := m.codec.Encode(snap, theme, types.BackupAutomatic)
	data, err := m.codec.Marshal(doc)
	if err != nil {
		return err
	}

	name := backupFilename(types.BackupAutomatic, m.now())
	if err := writeFileAtomic(filepath.Join(m.dir, name), data); err != nil {
		return fmt.Errorf("writing backup %s: %w", name, err)
	}

	if err := m.kv.Set(lastBackupKey, m.now().UTC().Format(time.RFC3339)); err != nil {
		m.log.Error("failed to record backup time", "err", err)
	}

	if err := m.PruneOldBackups(); err != nil {
		m.log.Error("failed to prune old backups", "err", err)
	}

	m.log.Info("automatic backup created", "file", name)
	return nil
}

// ExportBackup writes a manual backup to destDir and returns the file
// path. Exports live outside the automatic directory and are never
// subject to retention pruning.
func (m *Manager) ExportBackup(snap types.ProgressSnapshot, theme types.ThemeMode, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	doc := m.codec.Encode(snap, theme, types.BackupManual)
	data, err := m.codec.Marshal(doc)
	if err != nil {
		return "", err
	}

	path := filepath.Join(destDir, backupFilename(types.BackupManual, m.now()))
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// ListAutomaticBackups lists the automatic backup directory, newest
// first. Files whose content cannot be parsed are skipped silently.
func (m *Manager) ListAutomaticBackups() []types.BackupFileInfo {
	return m.listDir(m.dir)
}

// ListBackupsIn lists backup files in an arbitrary directory, newest
// first, with the same corrupt-file tolerance. Used for browsing
// manually exported backups.
func (m *Manager) ListBackupsIn(dir string) []types.BackupFileInfo {
	return m.listDir(dir)
}

func (m *Manager) listDir(dir string) []types.BackupFileInfo {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			m.log.Warn("failed to list backups", "dir", dir, "err", err)
		}
		return nil
	}

	type fileEntry struct {
		info    types.BackupFileInfo
		modTime time.Time
	}
	var files []fileEntry
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FileExt) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		stat, err := entry.Info()
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		doc, err := Decode(data)
		if err != nil {
			// Corrupt file; skip rather than fail the listing.
			continue
		}
		files = append(files, fileEntry{
			info: types.BackupFileInfo{
				Filename:   entry.Name(),
				Path:       path,
				Timestamp:  doc.Metadata.Timestamp,
				BackupType: doc.Metadata.BackupType,
				Size:       stat.Size(),
				Metadata:   &doc.Metadata,
			},
			modTime: stat.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if !files[i].modTime.Equal(files[j].modTime) {
			return files[i].modTime.After(files[j].modTime)
		}
		return files[i].info.Filename > files[j].info.Filename
	})

	out := make([]types.BackupFileInfo, len(files))
	for i, f := range files {
		out[i] = f.info
	}
	return out
}

// PruneOldBackups deletes automatic backups beyond the retention
// count, oldest first. Pruning is one-way; a pruned file is gone.
func (m *Manager) PruneOldBackups() error {
	var auto []types.BackupFileInfo
	for _, info := range m.ListAutomaticBackups() {
		if info.BackupType == types.BackupAutomatic {
			auto = append(auto, info)
		}
	}

	var errs []error
	for _, info := range auto[min(m.maxRetained, len(auto)):] {
		if err := os.Remove(info.Path); err != nil {
			errs = append(errs, fmt.Errorf("removing %s: %w", info.Filename, err))
			continue
		}
		m.log.Info("deleted old backup", "file", info.Filename)
	}
	return errors.Join(errs...)
}

// DeleteBackup removes a specific backup file.
func (m *Manager) DeleteBackup(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting backup: %w", err)
	}
	return nil
}

// LoadBackup reads, validates, and decodes a backup file. The document
// is safe to restore once LoadBackup returns without error.
func (m *Manager) LoadBackup(path string) (types.BackupDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.BackupDocument{}, fmt.Errorf("%w: %v", types.ErrBackupDecode, err)
	}
	if err := Validate(data); err != nil {
		return types.BackupDocument{}, err
	}
	return Decode(data)
}

// backupFilename builds the conventional name, e.g.
// crash_backup_auto_2025-03-01T12-00-00.crashbackup.
func backupFilename(backupType types.BackupType, ts time.Time) string {
	kind := "auto"
	if backupType == types.BackupManual {
		kind = "manual"
	}
	return filePrefix + kind + "_" + ts.UTC().Format(fileTimestampLayout) + FileExt
}

// writeFileAtomic writes data using the temp-file, fsync, rename
// pattern so a crash never leaves a half-written backup behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".backup-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
