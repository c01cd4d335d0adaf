// Package backup implements the versioned backup subsystem: encoding
// and decoding backup documents, structural validation before restore,
// and the daily automatic backup cadence with retention pruning.
package backup

import (
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/wumpaworks/crashtrack/pkg/types"
)

// Codec converts between live progress state and backup documents.
type Codec struct {
	appVersion string
	platform   string
	deviceID   string
	now        func() time.Time
}

// NewCodec creates a codec that stamps the given app version and
// device ID into every document it encodes.
func NewCodec(appVersion, deviceID string) *Codec {
	return &Codec{
		appVersion: appVersion,
		platform:   runtime.GOOS,
		deviceID:   deviceID,
		now:        time.Now,
	}
}

// Encode wraps a snapshot and theme into a backup document, stamping
// metadata with the current time and a point-in-time gem count.
func (c *Codec) Encode(snap types.ProgressSnapshot, theme types.ThemeMode, backupType types.BackupType) types.BackupDocument {
	return types.BackupDocument{
		Metadata: types.BackupMetadata{
			Version:       types.BackupFormatVersion,
			AppVersion:    c.appVersion,
			Timestamp:     c.now().UTC().Format(time.RFC3339),
			Platform:      c.platform,
			BackupType:    backupType,
			TotalLevels:   types.TotalLevels,
			TotalGems:     types.TotalGemSlots,
			CollectedGems: CountCollectedGems(snap),
			DeviceID:      c.deviceID,
		},
		Progress: snap.Clone(),
		Theme:    theme,
	}
}

// Marshal renders a document to the on-disk form: indented JSON, the
// same shape the mobile app writes.
func (c *Codec) Marshal(doc types.BackupDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return data, nil
}

// Decode parses a serialized backup document. Malformed input yields
// ErrBackupDecode; callers must not assume success.
func Decode(data []byte) (types.BackupDocument, error) {
	var doc types.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.BackupDocument{}, fmt.Errorf("%w: %v", types.ErrBackupDecode, err)
	}
	return doc, nil
}

// CountCollectedGems counts the set gem flags across both modes of
// every level in the snapshot.
func CountCollectedGems(snap types.ProgressSnapshot) int {
	count := 0
	for _, l := range snap.Levels {
		count += l.Progress.GemCount()
	}
	return count
}

// ComputeBackupStats summarizes a document for preview. Platinum and
// relic counts are recomputed by scanning the embedded levels rather
// than trusted from metadata, which only captures a point-in-time
// summary. The completion percentage is the mean of the gem, platinum,
// and relic percentages.
func ComputeBackupStats(doc types.BackupDocument) types.BackupStats {
	stats := types.BackupStats{
		TotalGems:     doc.Metadata.TotalGems,
		CollectedGems: doc.Metadata.CollectedGems,
		LastUpdated:   doc.Progress.LastUpdated,
	}
	if stats.LastUpdated == "" {
		stats.LastUpdated = doc.Metadata.Timestamp
	}

	for _, l := range doc.Progress.Levels {
		if l.Progress.PlatinumTimeTrial.Completed {
			stats.PlatinumCount++
		}
		if l.Progress.NSanelyPerfectRelic.Completed {
			stats.NSanelyCount++
		}
	}

	var gemPct float64
	if stats.TotalGems > 0 {
		gemPct = float64(stats.CollectedGems) / float64(stats.TotalGems) * 100
	}
	platinumPct := float64(stats.PlatinumCount) / types.TotalLevels * 100
	nsanelyPct := float64(stats.NSanelyCount) / types.TotalLevels * 100
	stats.CompletionPercentage = (gemPct + platinumPct + nsanelyPct) / 3

	return stats
}
