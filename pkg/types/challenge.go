package types

import (
	"strings"
	"time"
)

// Difficulty rating bounds for challenge records.
const (
	MinDifficulty = 1
	MaxDifficulty = 10
)

// ChallengeRecord tracks progress on a per-level challenge: the
// platinum time trial or the N.Sanely Perfect relic. The relic variant
// never carries a Time; all other fields are shared.
//
// All update methods are pure: they return a modified copy and leave
// the receiver untouched.
type ChallengeRecord struct {
	Completed      bool   `json:"completed"`
	Time           string `json:"time,omitempty"`
	CompletionDate string `json:"completionDate,omitempty"`
	Attempts       int    `json:"attempts"`
	Difficulty     int    `json:"difficulty,omitempty"`
	Note           string `json:"note,omitempty"`
}

// WithCompletion sets the completed flag. CompletionDate is derived
// from the flag: stamped with now when it flips to true, cleared when
// it flips to false. Other fields are untouched.
func (r ChallengeRecord) WithCompletion(completed bool, now time.Time) ChallengeRecord {
	r.Completed = completed
	if completed {
		r.CompletionDate = now.UTC().Format(time.RFC3339)
	} else {
		r.CompletionDate = ""
	}
	return r
}

// WithCompletionDate sets the completion date explicitly, for callers
// that let the user backdate a completion.
func (r ChallengeRecord) WithCompletionDate(date time.Time) ChallengeRecord {
	r.CompletionDate = date.UTC().Format(time.RFC3339)
	return r
}

// WithTime sets the best trial time. The value must be in strict
// "MM:SS.mmm" format; returns ErrInvalidTrialTime otherwise.
func (r ChallengeRecord) WithTime(t string) (ChallengeRecord, error) {
	parsed, err := ParseTrialTime(t)
	if err != nil {
		return r, err
	}
	r.Time = parsed.String()
	return r, nil
}

// WithAttemptDelta adjusts the attempt counter by delta, saturating at
// zero. Attempts never go negative.
func (r ChallengeRecord) WithAttemptDelta(delta int) ChallengeRecord {
	r.Attempts += delta
	if r.Attempts < 0 {
		r.Attempts = 0
	}
	return r
}

// WithDifficulty sets the difficulty rating. Values outside
// [MinDifficulty, MaxDifficulty] are rejected with ErrDifficultyRange.
func (r ChallengeRecord) WithDifficulty(d int) (ChallengeRecord, error) {
	if d < MinDifficulty || d > MaxDifficulty {
		return r, ErrDifficultyRange
	}
	r.Difficulty = d
	return r, nil
}

// WithNote sets the note. Whitespace-only notes are rejected with
// ErrEmptyNote; use ClearNote to remove a note.
func (r ChallengeRecord) WithNote(note string) (ChallengeRecord, error) {
	if strings.TrimSpace(note) == "" {
		return r, ErrEmptyNote
	}
	r.Note = note
	return r, nil
}

// ClearNote removes the note. Idempotent.
func (r ChallengeRecord) ClearNote() ChallengeRecord {
	r.Note = ""
	return r
}

// Reset returns a fresh record: not completed, zero attempts, and
// time, completion date, difficulty, and note all dropped. This is a
// destructive reset, not a partial clear.
func (r ChallengeRecord) Reset() ChallengeRecord {
	return ChallengeRecord{}
}
