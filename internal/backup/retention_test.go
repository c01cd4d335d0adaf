package backup

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wumpaworks/crashtrack/internal/catalog"
	"github.com/wumpaworks/crashtrack/internal/storage"
	"github.com/wumpaworks/crashtrack/pkg/types"
)

// testManager wires a manager over temp storage with a controllable
// clock shared with its codec.
func testManager(t *testing.T) (*Manager, *time.Time) {
	t.Helper()
	kv, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	codec := NewCodec("1.0.0", "test-device")
	codec.now = func() time.Time { return clock }

	dir := filepath.Join(t.TempDir(), "backups", "auto")
	m := NewManager(dir, kv, codec, log.New(io.Discard), DefaultMaxAutoBackups)
	m.now = codec.now
	return m, &clock
}

func TestAutoBackupDueBoundary(t *testing.T) {
	m, clock := testManager(t)

	// No backup yet: due.
	assert.True(t, m.AutoBackupDue())

	require.NoError(t, m.CreateAutomaticBackup(catalog.NewSnapshot(), types.ThemeAuto))
	assert.False(t, m.AutoBackupDue(), "not due right after a backup")

	*clock = clock.Add(23 * time.Hour)
	assert.False(t, m.AutoBackupDue())

	*clock = clock.Add(time.Hour)
	assert.True(t, m.AutoBackupDue(), "due once 24h have elapsed")
}

func TestAutoBackupDueFailsOpen(t *testing.T) {
	m, _ := testManager(t)
	require.NoError(t, m.kv.Set(lastBackupKey, "not-a-timestamp"))
	assert.True(t, m.AutoBackupDue())
}

// Writing ten automatic backups, with pruning after each, leaves
// exactly seven files: the seven most recent.
func TestRetentionBound(t *testing.T) {
	m, clock := testManager(t)
	snap := catalog.NewSnapshot()

	var names []string
	for i := 0; i < 10; i++ {
		require.NoError(t, m.CreateAutomaticBackup(snap, types.ThemeAuto))
		names = append(names, backupFilename(types.BackupAutomatic, *clock))
		*clock = clock.Add(25 * time.Hour)
	}

	entries, err := os.ReadDir(m.dir)
	require.NoError(t, err)
	assert.Len(t, entries, DefaultMaxAutoBackups)

	onDisk := make(map[string]bool, len(entries))
	for _, e := range entries {
		onDisk[e.Name()] = true
	}
	for _, name := range names[3:] {
		assert.True(t, onDisk[name], "recent backup %s must survive", name)
	}
	for _, name := range names[:3] {
		assert.False(t, onDisk[name], "old backup %s must be pruned", name)
	}
}

func TestListAutomaticBackupsNewestFirst(t *testing.T) {
	m, clock := testManager(t)
	snap := catalog.NewSnapshot()

	for i := 0; i < 3; i++ {
		require.NoError(t, m.CreateAutomaticBackup(snap, types.ThemeAuto))
		*clock = clock.Add(25 * time.Hour)
	}

	infos := m.ListAutomaticBackups()
	require.Len(t, infos, 3)
	for i := 1; i < len(infos); i++ {
		assert.GreaterOrEqual(t, infos[i-1].Timestamp, infos[i].Timestamp, "listing must be newest first")
	}
	for _, info := range infos {
		assert.Equal(t, types.BackupAutomatic, info.BackupType)
		require.NotNil(t, info.Metadata)
		assert.Positive(t, info.Size)
	}
}

func TestListSkipsCorruptFiles(t *testing.T) {
	m, _ := testManager(t)
	require.NoError(t, m.CreateAutomaticBackup(catalog.NewSnapshot(), types.ThemeAuto))
	require.NoError(t, os.WriteFile(filepath.Join(m.dir, "junk"+FileExt), []byte("{broken"), 0o644))

	infos := m.ListAutomaticBackups()
	assert.Len(t, infos, 1, "corrupt file skipped silently")
}

func TestListMissingDirIsEmpty(t *testing.T) {
	m, _ := testManager(t)
	assert.Empty(t, m.ListAutomaticBackups())
	assert.Empty(t, m.ListBackupsIn(filepath.Join(t.TempDir(), "nowhere")))
}

// Manual exports live outside the automatic directory and survive any
// amount of automatic churn.
func TestExportNotSubjectToPruning(t *testing.T) {
	m, clock := testManager(t)
	exportDir := t.TempDir()

	path, err := m.ExportBackup(catalog.NewSnapshot(), types.ThemeDark, exportDir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path) || filepath.Dir(path) == exportDir)

	for i := 0; i < 10; i++ {
		require.NoError(t, m.CreateAutomaticBackup(catalog.NewSnapshot(), types.ThemeAuto))
		*clock = clock.Add(25 * time.Hour)
	}

	_, err = os.Stat(path)
	assert.NoError(t, err, "manual export must survive pruning")

	infos := m.ListBackupsIn(exportDir)
	require.Len(t, infos, 1)
	assert.Equal(t, types.BackupManual, infos[0].BackupType)
	assert.Equal(t, types.ThemeDark, mustLoad(t, m, infos[0].Path).Theme)
}

func TestLoadBackup(t *testing.T) {
	m, _ := testManager(t)
	dir := t.TempDir()

	path, err := m.ExportBackup(catalog.NewSnapshot(), types.ThemeLight, dir)
	require.NoError(t, err)

	doc, err := m.LoadBackup(path)
	require.NoError(t, err)
	assert.Len(t, doc.Progress.Levels, types.TotalLevels)
	assert.Equal(t, types.ThemeLight, doc.Theme)
}

func TestLoadBackupRejectsBadFiles(t *testing.T) {
	m, _ := testManager(t)
	dir := t.TempDir()

	missing := filepath.Join(dir, "absent.crashbackup")
	_, err := m.LoadBackup(missing)
	assert.ErrorIs(t, err, types.ErrBackupDecode)

	malformed := filepath.Join(dir, "malformed.crashbackup")
	require.NoError(t, os.WriteFile(malformed, []byte("{oops"), 0o644))
	_, err = m.LoadBackup(malformed)
	assert.ErrorIs(t, err, types.ErrInvalidBackup)

	truncated := filepath.Join(dir, "truncated.crashbackup")
	require.NoError(t, os.WriteFile(truncated, []byte(`{"metadata":{"version":"1.0.0","timestamp":"t"},"progress":{"levels":[]},"theme":"dark"}`), 0o644))
	_, err = m.LoadBackup(truncated)
	assert.ErrorIs(t, err, types.ErrInvalidBackup)
}

func TestDeleteBackup(t *testing.T) {
	m, _ := testManager(t)
	path, err := m.ExportBackup(catalog.NewSnapshot(), types.ThemeAuto, t.TempDir())
	require.NoError(t, err)

	require.NoError(t, m.DeleteBackup(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, m.DeleteBackup(path), "double delete reports an error")
}

func mustLoad(t *testing.T, m *Manager, path string) types.BackupDocument {
	t.Helper()
	doc, err := m.LoadBackup(path)
	require.NoError(t, err)
	return doc
}
