package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildSnapshot creates a 38-level snapshot with empty progress, two
// dimensions alternating for the dimension stats tests.
func buildSnapshot(levelCount int) ProgressSnapshot {
	levels := make([]Level, levelCount)
	for i := range levels {
		dim := "Alpha"
		if i%2 == 1 {
			dim = "Beta"
		}
		levels[i] = Level{ID: string(rune('a' + i)), Name: "Level", Dimension: dim}
	}
	return ProgressSnapshot{Levels: levels}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(buildSnapshot(TotalLevels))
	assert.Equal(t, TotalGemSlots, stats.TotalGems)
	assert.Zero(t, stats.CollectedGems)
	assert.Zero(t, stats.PlatinumCompletions)
	assert.Zero(t, stats.NSanelyCompletions)
	assert.Zero(t, stats.OverallPercentage)
}

// 10 of 456 gems, 2 platinums, 1 relic: overall percentage is
// (10+2+1)/(456+76)*100.
func TestComputeStatsAggregation(t *testing.T) {
	snap := buildSnapshot(TotalLevels)

	// 10 gems: 6 in level 0 normal mode, 4 in level 1 n.verted mode.
	snap.Levels[0].Progress.NormalMode = GemSet{
		Wumpa40: true, Wumpa60: true, Wumpa80: true,
		AllCrates: true, Deaths3OrLess: true, HiddenGem: true,
	}
	snap.Levels[1].Progress.NVertedMode = GemSet{
		Wumpa40: true, Wumpa60: true, Wumpa80: true, AllCrates: true,
	}

	snap.Levels[2].Progress.PlatinumTimeTrial.Completed = true
	snap.Levels[3].Progress.PlatinumTimeTrial.Completed = true
	snap.Levels[4].Progress.NSanelyPerfectRelic.Completed = true

	stats := ComputeStats(snap)
	assert.Equal(t, 10, stats.CollectedGems)
	assert.Equal(t, 2, stats.PlatinumCompletions)
	assert.Equal(t, 1, stats.NSanelyCompletions)
	assert.InDelta(t, float64(10)/456*100, stats.GemPercentage, 1e-9)
	assert.InDelta(t, float64(13)/(456+76)*100, stats.OverallPercentage, 1e-9)
	assert.InDelta(t, 2.44, stats.OverallPercentage, 0.01)
}

func TestComputeDimensionStats(t *testing.T) {
	snap := buildSnapshot(4) // Alpha: levels 0,2; Beta: levels 1,3
	snap.Levels[0].Progress.NormalMode = GemSet{Wumpa40: true, HiddenGem: true}
	snap.Levels[1].Progress.NVertedMode = GemSet{AllCrates: true}

	stats := ComputeDimensionStats(snap, []string{"Alpha", "Beta", "Gamma"})
	assert.Len(t, stats, 3)

	assert.Equal(t, "Alpha", stats[0].Dimension)
	assert.Equal(t, 24, stats[0].TotalGems)
	assert.Equal(t, 2, stats[0].CollectedGems)
	assert.InDelta(t, float64(2)/24*100, stats[0].CompletionPercentage, 1e-9)

	assert.Equal(t, 1, stats[1].CollectedGems)

	// Unknown dimension yields an all-zero entry rather than an error.
	assert.Zero(t, stats[2].TotalGems)
	assert.Zero(t, stats[2].CompletionPercentage)
}

func TestLevelCompletionFraction(t *testing.T) {
	var p LevelProgress
	assert.Zero(t, p.CompletionFraction())

	p.NormalMode = GemSet{Wumpa40: true, Wumpa60: true, Wumpa80: true}
	p.PlatinumTimeTrial.Completed = true
	assert.InDelta(t, float64(4)/14, p.CompletionFraction(), 1e-9)

	p.NVertedMode = GemSet{
		Wumpa40: true, Wumpa60: true, Wumpa80: true,
		AllCrates: true, Deaths3OrLess: true, HiddenGem: true,
	}
	p.NormalMode.AllCrates = true
	p.NormalMode.Deaths3OrLess = true
	p.NormalMode.HiddenGem = true
	p.NSanelyPerfectRelic.Completed = true
	assert.InDelta(t, 1.0, p.CompletionFraction(), 1e-9)
}
