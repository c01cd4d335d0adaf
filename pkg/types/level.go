package types

// ChallengesPerLevel counts the non-gem completion slots per level:
// the platinum time trial and the N.Sanely Perfect relic.
const ChallengesPerLevel = 2

// LevelProgress holds everything the player can mark off on a single
// level: one gem set per play mode plus the two challenge records.
type LevelProgress struct {
	NormalMode          GemSet          `json:"normalMode"`
	NVertedMode         GemSet          `json:"nVertedMode"`
	PlatinumTimeTrial   ChallengeRecord `json:"platinumTimeTrial"`
	NSanelyPerfectRelic ChallengeRecord `json:"nsanelyPerfectRelic"`
}

// Gems returns the gem set for the given mode.
// Returns ErrUnknownMode if the mode is not recognized.
func (p LevelProgress) Gems(mode Mode) (GemSet, error) {
	switch mode {
	case ModeNormal:
		return p.NormalMode, nil
	case ModeNVerted:
		return p.NVertedMode, nil
	default:
		return GemSet{}, ErrUnknownMode
	}
}

// GemCount returns the number of collected gems across both modes.
func (p LevelProgress) GemCount() int {
	return p.NormalMode.Count() + p.NVertedMode.Count()
}

// CompletionFraction returns the level's completion in [0, 1]: twelve
// gem slots plus the two challenge completions, out of fourteen.
func (p LevelProgress) CompletionFraction() float64 {
	done := p.GemCount()
	if p.PlatinumTimeTrial.Completed {
		done++
	}
	if p.NSanelyPerfectRelic.Completed {
		done++
	}
	return float64(done) / float64(2*GemsPerMode+ChallengesPerLevel)
}

// Level pairs a catalog entry's immutable identity (ID, name,
// dimension) with its mutable progress.
type Level struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Dimension string        `json:"dimension"`
	Progress  LevelProgress `json:"progress"`
}

// WithGemFlag returns a copy of the level with a single gem flag
// replaced in the selected mode's set. No other flag in either mode is
// altered.
func (l Level) WithGemFlag(mode Mode, key GemKey, value bool) (Level, error) {
	switch mode {
	case ModeNormal:
		gems, err := l.Progress.NormalMode.WithFlag(key, value)
		if err != nil {
			return l, err
		}
		l.Progress.NormalMode = gems
	case ModeNVerted:
		gems, err := l.Progress.NVertedMode.WithFlag(key, value)
		if err != nil {
			return l, err
		}
		l.Progress.NVertedMode = gems
	default:
		return l, ErrUnknownMode
	}
	return l, nil
}
