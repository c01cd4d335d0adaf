package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTrialTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TrialTime
		wantErr bool
	}{
		{name: "typical time", input: "01:23.456", want: TrialTime{1, 23, 456}},
		{name: "all zeros", input: "00:00.000", want: TrialTime{0, 0, 0}},
		{name: "max seconds", input: "99:59.999", want: TrialTime{99, 59, 999}},
		{name: "seconds over 59", input: "01:75.456", wantErr: true},
		{name: "seconds exactly 60", input: "01:60.000", wantErr: true},
		{name: "single digit minutes", input: "1:23.456", wantErr: true},
		{name: "missing millis digit", input: "01:23.45", wantErr: true},
		{name: "wrong separators", input: "01-23.456", wantErr: true},
		{name: "letters", input: "ab:cd.efg", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "trailing garbage", input: "01:23.4567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTrialTime(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTrialTime)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrialTimeRoundTrip(t *testing.T) {
	for _, s := range []string{"01:23.456", "00:00.000", "12:05.070", "59:59.999"} {
		parsed, err := ParseTrialTime(s)
		assert.NoError(t, err)
		assert.Equal(t, s, parsed.String())
	}
}

func TestTrialTimeDuration(t *testing.T) {
	parsed, err := ParseTrialTime("01:23.456")
	assert.NoError(t, err)
	assert.Equal(t, time.Minute+23*time.Second+456*time.Millisecond, parsed.Duration())
}
