package types

// Backup format constants. TotalLevels and TotalGemSlots are fixed by
// the game: 38 levels with 12 gem slots each.
const (
	BackupFormatVersion = "1.0.0"
	TotalLevels         = 38
	TotalGemSlots       = TotalLevels * 2 * GemsPerMode
)

// BackupType distinguishes daily automatic backups from user-triggered
// exports. Only automatic backups are subject to retention pruning.
type BackupType string

const (
	BackupAutomatic BackupType = "automatic"
	BackupManual    BackupType = "manual"
)

// BackupMetadata describes a backup document: who wrote it, when, and
// a point-in-time summary of the snapshot it carries.
type BackupMetadata struct {
	Version       string     `json:"version"`
	AppVersion    string     `json:"appVersion"`
	Timestamp     string     `json:"timestamp"`
	Platform      string     `json:"platform"`
	BackupType    BackupType `json:"backupType"`
	TotalLevels   int        `json:"totalLevels"`
	TotalGems     int        `json:"totalGems"`
	CollectedGems int        `json:"collectedGems"`
	DeviceID      string     `json:"deviceId,omitempty"`
}

// BackupDocument is the unit exchanged on export and import: metadata,
// the full progress snapshot, and the theme preference. Immutable once
// written.
type BackupDocument struct {
	Metadata BackupMetadata   `json:"metadata"`
	Progress ProgressSnapshot `json:"progress"`
	Theme    ThemeMode        `json:"theme"`
}

// BackupFileInfo describes one backup file on disk, newest-first in
// listings. Files whose body cannot be parsed never make it into a
// listing, so Metadata is always populated.
type BackupFileInfo struct {
	Filename   string          `json:"filename"`
	Path       string          `json:"path"`
	Timestamp  string          `json:"timestamp"`
	BackupType BackupType      `json:"backupType"`
	Size       int64           `json:"size"`
	Metadata   *BackupMetadata `json:"metadata,omitempty"`
}

// BackupStats summarizes a backup document for preview before restore.
// Platinum and relic counts are recomputed from the embedded levels,
// not trusted from metadata; the metadata summary is a point-in-time
// cache that can go stale if either half is hand-edited.
type BackupStats struct {
	TotalGems            int     `json:"totalGems"`
	CollectedGems        int     `json:"collectedGems"`
	CompletionPercentage float64 `json:"completionPercentage"`
	PlatinumCount        int     `json:"platinumCount"`
	NSanelyCount         int     `json:"nsanelyCount"`
	LastUpdated          string  `json:"lastUpdated"`
}
