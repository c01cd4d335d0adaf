package backup

import (
	"encoding/json"
	"fmt"

	"github.com/wumpaworks/crashtrack/pkg/types"
)

// Loose mirror of the document shape used only for validation, so a
// missing field is distinguishable from a zero value.
type looseDocument struct {
	Metadata *looseMetadata `json:"metadata"`
	Progress *looseProgress `json:"progress"`
	Theme    *string        `json:"theme"`
}

type looseMetadata struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type looseProgress struct {
	Levels []looseLevel `json:"levels"`
}

type looseLevel struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Progress json.RawMessage `json:"progress"`
}

// Validate gate-keeps a raw backup document before it may overwrite
// the live store. All checks must pass; any failure rejects the whole
// document with ErrInvalidBackup and no partial restore is attempted.
//
// The per-level check is a deliberate spot check of the first entry
// only, matching what the mobile app accepts.
func Validate(data []byte) error {
	var doc looseDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidBackup, err)
	}

	if doc.Metadata == nil || doc.Progress == nil || doc.Theme == nil {
		return fmt.Errorf("%w: missing metadata, progress, or theme", types.ErrInvalidBackup)
	}
	if doc.Metadata.Version == "" || doc.Metadata.Timestamp == "" {
		return fmt.Errorf("%w: incomplete metadata", types.ErrInvalidBackup)
	}
	if len(doc.Progress.Levels) == 0 {
		return fmt.Errorf("%w: no levels", types.ErrInvalidBackup)
	}

	first := doc.Progress.Levels[0]
	if first.ID == "" || first.Name == "" || len(first.Progress) == 0 || string(first.Progress) == "null" {
		return fmt.Errorf("%w: malformed level entry", types.ErrInvalidBackup)
	}

	if !types.ThemeMode(*doc.Theme).Valid() {
		return fmt.Errorf("%w: unrecognized theme %q", types.ErrInvalidBackup, *doc.Theme)
	}

	return nil
}
