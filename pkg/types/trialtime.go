package types

import (
	"fmt"
	"strconv"
	"time"
)

// TrialTime is a parsed platinum time trial time in the strict
// "MM:SS.mmm" format: two-digit minutes, two-digit seconds below 60,
// three-digit milliseconds.
type TrialTime struct {
	Minutes int
	Seconds int
	Millis  int
}

// ParseTrialTime parses a trial time string. It returns
// ErrInvalidTrialTime for anything that does not match the strict
// format; it never returns a silently-wrong value.
func ParseTrialTime(s string) (TrialTime, error) {
	if len(s) != 9 || s[2] != ':' || s[5] != '.' {
		return TrialTime{}, fmt.Errorf("%w: %q", ErrInvalidTrialTime, s)
	}
	for i, c := range s {
		if i == 2 || i == 5 {
			continue
		}
		if c < '0' || c > '9' {
			return TrialTime{}, fmt.Errorf("%w: %q", ErrInvalidTrialTime, s)
		}
	}
	minutes, _ := strconv.Atoi(s[0:2])
	seconds, _ := strconv.Atoi(s[3:5])
	millis, _ := strconv.Atoi(s[6:9])
	if seconds > 59 {
		return TrialTime{}, fmt.Errorf("%w: seconds out of range in %q", ErrInvalidTrialTime, s)
	}
	return TrialTime{Minutes: minutes, Seconds: seconds, Millis: millis}, nil
}

// String formats the time back to "MM:SS.mmm". ParseTrialTime and
// String round-trip exactly.
func (t TrialTime) String() string {
	return fmt.Sprintf("%02d:%02d.%03d", t.Minutes, t.Seconds, t.Millis)
}

// Duration converts the trial time to a time.Duration.
func (t TrialTime) Duration() time.Duration {
	return time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second +
		time.Duration(t.Millis)*time.Millisecond
}
