// Package prefs persists small user preferences in the key-value
// store: the theme mode and the per-installation device ID.
package prefs

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/wumpaworks/crashtrack/internal/storage"
	"github.com/wumpaworks/crashtrack/pkg/types"
)

// Storage keys, one per preference.
const (
	themeKey  = "@CrashTracker:theme"
	deviceKey = "@CrashTracker:deviceId"
)

// Prefs reads and writes preferences. Missing or damaged values
// degrade to defaults; reads never fail.
type Prefs struct {
	kv  *storage.Store
	log *log.Logger
}

// New creates a preference accessor over the given storage.
func New(kv *storage.Store, logger *log.Logger) *Prefs {
	return &Prefs{kv: kv, log: logger}
}

// Theme returns the stored theme mode, defaulting to auto when the
// preference is missing or unrecognized.
func (p *Prefs) Theme() types.ThemeMode {
	raw, err := p.kv.Get(themeKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			p.log.Warn("failed to read theme preference", "err", err)
		}
		return types.ThemeAuto
	}
	mode := types.ThemeMode(raw)
	if !mode.Valid() {
		p.log.Warn("stored theme preference is unrecognized", "value", raw)
		return types.ThemeAuto
	}
	return mode
}

// SetTheme stores the theme mode.
// Returns ErrUnknownTheme for anything but light, dark, or auto.
func (p *Prefs) SetTheme(mode types.ThemeMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", types.ErrUnknownTheme, mode)
	}
	return p.kv.Set(themeKey, string(mode))
}

// DeviceID returns the installation's stable identifier, generating
// and persisting a UUID v7 on first call.
func (p *Prefs) DeviceID() string {
	if id, err := p.kv.Get(deviceKey); err == nil && id != "" {
		return id
	}

	id, err := uuid.NewV7()
	if err != nil {
		// v4 needs no clock; keep going with it.
		id = uuid.New()
	}
	if err := p.kv.Set(deviceKey, id.String()); err != nil {
		p.log.Warn("failed to persist device id", "err", err)
	}
	return id.String()
}
