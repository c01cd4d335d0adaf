package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func twoLevelSnapshot() ProgressSnapshot {
	return ProgressSnapshot{Levels: []Level{
		{ID: "rude-awakening", Name: "Rude Awakening", Dimension: "N. Sanity Island"},
		{ID: "a-real-grind", Name: "A Real Grind", Dimension: "The Hazardous Wastes"},
	}}
}

func TestSnapshotLevelLookup(t *testing.T) {
	snap := twoLevelSnapshot()

	l, ok := snap.Level("a-real-grind")
	assert.True(t, ok)
	assert.Equal(t, "A Real Grind", l.Name)

	_, ok = snap.Level("no-such-level")
	assert.False(t, ok)
}

func TestSnapshotLevelsByDimension(t *testing.T) {
	snap := twoLevelSnapshot()
	got := snap.LevelsByDimension("N. Sanity Island")
	assert.Len(t, got, 1)
	assert.Equal(t, "rude-awakening", got[0].ID)
	assert.Empty(t, snap.LevelsByDimension("Nowhere"))
}

// Mutating a clone must not leak into the original collection.
func TestSnapshotCloneIsolation(t *testing.T) {
	snap := twoLevelSnapshot()
	clone := snap.Clone()

	updated, err := clone.Levels[0].WithGemFlag(ModeNormal, GemHiddenGem, true)
	assert.NoError(t, err)
	clone.Levels[0] = updated

	orig, _ := snap.Level("rude-awakening")
	assert.False(t, orig.Progress.NormalMode.HiddenGem)
	assert.True(t, clone.Levels[0].Progress.NormalMode.HiddenGem)
}

func TestLevelWithGemFlag(t *testing.T) {
	l := Level{ID: "x"}

	got, err := l.WithGemFlag(ModeNVerted, GemWumpa60, true)
	assert.NoError(t, err)
	assert.True(t, got.Progress.NVertedMode.Wumpa60)
	assert.False(t, got.Progress.NormalMode.Wumpa60, "other mode untouched")

	_, err = l.WithGemFlag(Mode("mirror"), GemWumpa60, true)
	assert.ErrorIs(t, err, ErrUnknownMode)

	_, err = l.WithGemFlag(ModeNormal, GemKey("bogus"), true)
	assert.ErrorIs(t, err, ErrUnknownGemKey)
}
