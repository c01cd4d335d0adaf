// Package progress owns the canonical in-memory progress snapshot and
// its persisted copy. Every field-level edit funnels through Mutate,
// which replaces the snapshot copy-on-write and persists the result;
// readers never observe a partially-updated collection.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wumpaworks/crashtrack/internal/catalog"
	"github.com/wumpaworks/crashtrack/internal/storage"
	"github.com/wumpaworks/crashtrack/pkg/types"
)

// progressKey is the storage key of the persisted progress document.
const progressKey = "@CrashTracker:progress"

// Store owns the canonical snapshot. All mutations are serialized under
// one mutex; persistence happens synchronously inside the mutation so
// writes to the storage key cannot interleave.
type Store struct {
	kv  *storage.Store
	log *log.Logger
	now func() time.Time

	mu   sync.RWMutex
	snap types.ProgressSnapshot
}

// NewStore creates a store over the given key-value storage. The
// in-memory snapshot starts from the static catalog; call Load to pick
// up the persisted document.
func NewStore(kv *storage.Store, logger *log.Logger) *Store {
	return &Store{
		kv:   kv,
		log:  logger,
		now:  time.Now,
		snap: catalog.NewSnapshot(),
	}
}

// Load reads the persisted progress document and makes it the current
// snapshot. A missing or unparsable document falls back to the static
// catalog; Load never fails, it logs and degrades.
func (s *Store) Load() types.ProgressSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(progressKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.log.Warn("failed to read stored progress, starting fresh", "err", err)
		}
		s.snap = catalog.NewSnapshot()
		return s.snap.Clone()
	}

	var snap types.ProgressSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil || len(snap.Levels) == 0 {
		s.log.Warn("stored progress is unreadable, starting fresh", "err", err)
		s.snap = catalog.NewSnapshot()
		return s.snap.Clone()
	}

	s.snap = snap
	return s.snap.Clone()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() types.ProgressSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// Mutate applies update to the level with the given ID, replaces it in
// the collection preserving position, stamps LastUpdated, and persists.
// Returns ErrLevelNotFound for an unknown ID so callers can tell
// "nothing to do" from a bug. Persistence failures are logged, never
// surfaced: the in-memory snapshot stays authoritative for the session.
func (s *Store) Mutate(levelID string, update func(types.Level) (types.Level, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, l := range s.snap.Levels {
		if l.ID == levelID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.log.Warn("mutation target not found", "level", levelID)
		return fmt.Errorf("%w: %s", types.ErrLevelNotFound, levelID)
	}

	updated, err := update(s.snap.Levels[idx])
	if err != nil {
		return err
	}

	next := s.snap.Clone()
	next.Levels[idx] = updated
	next.LastUpdated = s.now().UTC().Format(time.RFC3339)
	s.snap = next
	s.persistLocked()
	return nil
}

// ResetAll deletes the persisted document and re-seeds the snapshot
// from the static catalog.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(progressKey); err != nil {
		s.log.Error("failed to delete stored progress", "err", err)
	}
	s.snap = catalog.NewSnapshot()
}

// Restore replaces the entire collection with an externally validated
// snapshot and persists it.
func (s *Store) Restore(snap types.ProgressSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := snap.Clone()
	next.LastUpdated = s.now().UTC().Format(time.RFC3339)
	s.snap = next
	s.persistLocked()
}

// persistLocked writes the current snapshot to storage. Errors are
// logged only; persistence is best-effort and the worst case is losing
// changes since the last successful write.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.snap)
	if err != nil {
		s.log.Error("failed to encode progress", "err", err)
		return
	}
	if err := s.kv.Set(progressKey, string(data)); err != nil {
		s.log.Error("failed to save progress", "err", err)
	}
}
