package types

// CompletionStats aggregates progress across the whole snapshot.
type CompletionStats struct {
	TotalGems           int     `json:"totalGems"`
	CollectedGems       int     `json:"collectedGems"`
	GemPercentage       float64 `json:"gemPercentage"`
	PlatinumCompletions int     `json:"platinumCompletions"`
	NSanelyCompletions  int     `json:"nsanelyCompletions"`
	OverallPercentage   float64 `json:"overallPercentage"`
}

// DimensionStats aggregates gem progress for one dimension.
type DimensionStats struct {
	Dimension            string  `json:"dimension"`
	TotalGems            int     `json:"totalGems"`
	CollectedGems        int     `json:"collectedGems"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

// ComputeStats derives overall completion statistics from a snapshot.
// The overall percentage treats each gem slot and each challenge
// completion as one unit: (gems + platinums + relics) over
// (gem slots + 2 per level).
func ComputeStats(s ProgressSnapshot) CompletionStats {
	stats := CompletionStats{
		TotalGems: len(s.Levels) * 2 * GemsPerMode,
	}
	for _, l := range s.Levels {
		stats.CollectedGems += l.Progress.GemCount()
		if l.Progress.PlatinumTimeTrial.Completed {
			stats.PlatinumCompletions++
		}
		if l.Progress.NSanelyPerfectRelic.Completed {
			stats.NSanelyCompletions++
		}
	}
	if stats.TotalGems > 0 {
		stats.GemPercentage = float64(stats.CollectedGems) / float64(stats.TotalGems) * 100
	}
	totalUnits := stats.TotalGems + ChallengesPerLevel*len(s.Levels)
	if totalUnits > 0 {
		doneUnits := stats.CollectedGems + stats.PlatinumCompletions + stats.NSanelyCompletions
		stats.OverallPercentage = float64(doneUnits) / float64(totalUnits) * 100
	}
	return stats
}

// ComputeDimensionStats derives per-dimension gem statistics, one entry
// per dimension in the order given.
func ComputeDimensionStats(s ProgressSnapshot, dimensions []string) []DimensionStats {
	out := make([]DimensionStats, 0, len(dimensions))
	for _, dim := range dimensions {
		ds := DimensionStats{Dimension: dim}
		for _, l := range s.LevelsByDimension(dim) {
			ds.TotalGems += 2 * GemsPerMode
			ds.CollectedGems += l.Progress.GemCount()
		}
		if ds.TotalGems > 0 {
			ds.CompletionPercentage = float64(ds.CollectedGems) / float64(ds.TotalGems) * 100
		}
		out = append(out, ds)
	}
	return out
}
