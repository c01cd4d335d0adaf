package progress

import (
	"time"

	"github.com/wumpaworks/crashtrack/pkg/types"
)

// challengeKind selects which of the two challenge records a mutation
// targets.
type challengeKind int

const (
	platinumTrial challengeKind = iota
	nsanelyRelic
)

// mutateChallenge routes a challenge-record update through the Mutate
// funnel, reading and writing the selected record on the level.
func (s *Store) mutateChallenge(levelID string, kind challengeKind, update func(types.ChallengeRecord) (types.ChallengeRecord, error)) error {
	return s.Mutate(levelID, func(l types.Level) (types.Level, error) {
		rec := l.Progress.PlatinumTimeTrial
		if kind == nsanelyRelic {
			rec = l.Progress.NSanelyPerfectRelic
		}
		updated, err := update(rec)
		if err != nil {
			return l, err
		}
		if kind == nsanelyRelic {
			l.Progress.NSanelyPerfectRelic = updated
		} else {
			l.Progress.PlatinumTimeTrial = updated
		}
		return l, nil
	})
}

// SetGemFlag replaces a single gem flag in the selected mode's set.
func (s *Store) SetGemFlag(levelID string, mode types.Mode, key types.GemKey, value bool) error {
	return s.Mutate(levelID, func(l types.Level) (types.Level, error) {
		return l.WithGemFlag(mode, key, value)
	})
}

// SetTrialCompletion marks the platinum time trial completed or not.
func (s *Store) SetTrialCompletion(levelID string, completed bool) error {
	return s.mutateChallenge(levelID, platinumTrial, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithCompletion(completed, s.now()), nil
	})
}

// SetTrialTime records the best platinum time in "MM:SS.mmm" format.
func (s *Store) SetTrialTime(levelID, trialTime string) error {
	return s.mutateChallenge(levelID, platinumTrial, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithTime(trialTime)
	})
}

// AdjustTrialAttempts bumps the platinum attempt counter, saturating at zero.
func (s *Store) AdjustTrialAttempts(levelID string, delta int) error {
	return s.mutateChallenge(levelID, platinumTrial, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithAttemptDelta(delta), nil
	})
}

// SetTrialDifficulty rates the platinum trial from 1 to 10.
func (s *Store) SetTrialDifficulty(levelID string, difficulty int) error {
	return s.mutateChallenge(levelID, platinumTrial, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithDifficulty(difficulty)
	})
}

// SetTrialDate backdates the platinum completion date.
func (s *Store) SetTrialDate(levelID string, date time.Time) error {
	return s.mutateChallenge(levelID, platinumTrial, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithCompletionDate(date), nil
	})
}

// SetTrialNote attaches a note to the platinum trial.
func (s *Store) SetTrialNote(levelID, note string) error {
	return s.mutateChallenge(levelID, platinumTrial, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithNote(note)
	})
}

// ClearTrialNote removes the platinum trial note.
func (s *Store) ClearTrialNote(levelID string) error {
	return s.mutateChallenge(levelID, platinumTrial, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.ClearNote(), nil
	})
}

// ResetTrial wipes the platinum record back to its zero state.
func (s *Store) ResetTrial(levelID string) error {
	return s.mutateChallenge(levelID, platinumTrial, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.Reset(), nil
	})
}

// SetRelicCompletion marks the N.Sanely Perfect relic completed or not.
func (s *Store) SetRelicCompletion(levelID string, completed bool) error {
	return s.mutateChallenge(levelID, nsanelyRelic, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithCompletion(completed, s.now()), nil
	})
}

// AdjustRelicAttempts bumps the relic attempt counter, saturating at zero.
func (s *Store) AdjustRelicAttempts(levelID string, delta int) error {
	return s.mutateChallenge(levelID, nsanelyRelic, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithAttemptDelta(delta), nil
	})
}

// SetRelicDifficulty rates the relic run from 1 to 10.
func (s *Store) SetRelicDifficulty(levelID string, difficulty int) error {
	return s.mutateChallenge(levelID, nsanelyRelic, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithDifficulty(difficulty)
	})
}

// SetRelicDate backdates the relic completion date.
func (s *Store) SetRelicDate(levelID string, date time.Time) error {
	return s.mutateChallenge(levelID, nsanelyRelic, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithCompletionDate(date), nil
	})
}

// SetRelicNote attaches a note to the relic record.
func (s *Store) SetRelicNote(levelID, note string) error {
	return s.mutateChallenge(levelID, nsanelyRelic, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.WithNote(note)
	})
}

// ClearRelicNote removes the relic note.
func (s *Store) ClearRelicNote(levelID string) error {
	return s.mutateChallenge(levelID, nsanelyRelic, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.ClearNote(), nil
	})
}

// ResetRelic wipes the relic record back to its zero state.
func (s *Store) ResetRelic(levelID string) error {
	return s.mutateChallenge(levelID, nsanelyRelic, func(r types.ChallengeRecord) (types.ChallengeRecord, error) {
		return r.Reset(), nil
	})
}
