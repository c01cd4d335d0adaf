package types

// ProgressSnapshot is the unit of persistence and of backup/restore:
// the full ordered level collection plus the time of the last change.
type ProgressSnapshot struct {
	Levels      []Level `json:"levels"`
	LastUpdated string  `json:"lastUpdated,omitempty"`
}

// Level returns the level with the given ID and whether it was found.
func (s ProgressSnapshot) Level(id string) (Level, bool) {
	for _, l := range s.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

// LevelsByDimension returns the levels belonging to one dimension, in
// catalog order.
func (s ProgressSnapshot) LevelsByDimension(dimension string) []Level {
	var out []Level
	for _, l := range s.Levels {
		if l.Dimension == dimension {
			out = append(out, l)
		}
	}
	return out
}

// Clone returns a deep copy of the snapshot. Level and its nested
// records are value types, so copying the slice is sufficient.
func (s ProgressSnapshot) Clone() ProgressSnapshot {
	levels := make([]Level, len(s.Levels))
	copy(levels, s.Levels)
	return ProgressSnapshot{Levels: levels, LastUpdated: s.LastUpdated}
}
