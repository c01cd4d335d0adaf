package backup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wumpaworks/crashtrack/internal/catalog"
	"github.com/wumpaworks/crashtrack/pkg/types"
)

func testCodec() *Codec {
	c := NewCodec("1.0.0", "test-device")
	c.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

// testSnapshot returns a catalog snapshot with 10 gems, 2 platinum
// completions, and 1 relic completion.
func testSnapshot(t *testing.T) types.ProgressSnapshot {
	t.Helper()
	snap := catalog.NewSnapshot()
	snap.Levels[0].Progress.NormalMode = types.GemSet{
		Wumpa40: true, Wumpa60: true, Wumpa80: true,
		AllCrates: true, Deaths3OrLess: true, HiddenGem: true,
	}
	snap.Levels[1].Progress.NVertedMode = types.GemSet{
		Wumpa40: true, Wumpa60: true, Wumpa80: true, AllCrates: true,
	}
	snap.Levels[2].Progress.PlatinumTimeTrial.Completed = true
	snap.Levels[3].Progress.PlatinumTimeTrial.Completed = true
	snap.Levels[4].Progress.NSanelyPerfectRelic.Completed = true
	snap.LastUpdated = "2025-02-28T08:00:00Z"
	return snap
}

func TestEncodeStampsMetadata(t *testing.T) {
	doc := testCodec().Encode(testSnapshot(t), types.ThemeDark, types.BackupAutomatic)

	meta := doc.Metadata
	assert.Equal(t, types.BackupFormatVersion, meta.Version)
	assert.Equal(t, "1.0.0", meta.AppVersion)
	assert.Equal(t, "2025-03-01T12:00:00Z", meta.Timestamp)
	assert.Equal(t, types.BackupAutomatic, meta.BackupType)
	assert.Equal(t, types.TotalLevels, meta.TotalLevels)
	assert.Equal(t, types.TotalGemSlots, meta.TotalGems)
	assert.Equal(t, 10, meta.CollectedGems)
	assert.Equal(t, "test-device", meta.DeviceID)
	assert.Equal(t, types.ThemeDark, doc.Theme)
}

// Marshal then Decode must reproduce the progress and theme exactly.
func TestBackupRoundTrip(t *testing.T) {
	codec := testCodec()
	snap := testSnapshot(t)

	doc := codec.Encode(snap, types.ThemeLight, types.BackupManual)
	data, err := codec.Marshal(doc)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, snap, got.Progress)
	assert.Equal(t, types.ThemeLight, got.Theme)
	assert.Equal(t, doc.Metadata, got.Metadata)
}

func TestDecodeMalformed(t *testing.T) {
	for _, input := range []string{"", "{truncated", "[1,2,3"} {
		_, err := Decode([]byte(input))
		assert.ErrorIs(t, err, types.ErrBackupDecode, "input %q", input)
	}
}

func TestComputeBackupStatsRecomputesCounts(t *testing.T) {
	codec := testCodec()
	doc := codec.Encode(testSnapshot(t), types.ThemeAuto, types.BackupManual)

	// Poison the metadata cache: the counts must come from the levels.
	doc.Metadata.CollectedGems = 10

	stats := ComputeBackupStats(doc)
	assert.Equal(t, 2, stats.PlatinumCount)
	assert.Equal(t, 1, stats.NSanelyCount)
	assert.Equal(t, 10, stats.CollectedGems)
	assert.Equal(t, types.TotalGemSlots, stats.TotalGems)
	assert.Equal(t, "2025-02-28T08:00:00Z", stats.LastUpdated)

	gemPct := float64(10) / 456 * 100
	platPct := float64(2) / 38 * 100
	relicPct := float64(1) / 38 * 100
	assert.InDelta(t, (gemPct+platPct+relicPct)/3, stats.CompletionPercentage, 1e-9)
}

func TestComputeBackupStatsFallsBackToMetadataTimestamp(t *testing.T) {
	codec := testCodec()
	snap := testSnapshot(t)
	snap.LastUpdated = ""

	stats := ComputeBackupStats(codec.Encode(snap, types.ThemeAuto, types.BackupAutomatic))
	assert.Equal(t, "2025-03-01T12:00:00Z", stats.LastUpdated)
}
