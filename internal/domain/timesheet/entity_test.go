package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"12:00", 720, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"8:30", 0, true},
		{"08-30", 0, true},
		{"0830", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClockTime(c.input)
		if c.wantErr {
			assert.ErrorIs(t, err, ErrMalformedTime, "input %q", c.input)
		} else {
			require.NoError(t, err, "input %q", c.input)
			assert.Equal(t, c.minutes, got, "input %q", c.input)
		}
	}
}

func TestFormatClockTime(t *testing.T) {
	assert.Equal(t, "00:00", FormatClockTime(0))
	assert.Equal(t, "08:30", FormatClockTime(510))
	assert.Equal(t, "23:59", FormatClockTime(1439))
}

func TestRecordState(t *testing.T) {
	r := &TimeRecord{}
	assert.Equal(t, StateEmpty, r.State())

	r.Entry1 = strPtr("08:00")
	assert.Equal(t, StateHasEntry1, r.State())

	r.Exit1 = strPtr("12:00")
	assert.Equal(t, StateHasExit1, r.State())

	r.Entry2 = strPtr("13:00")
	assert.Equal(t, StateHasEntry2, r.State())

	r.Exit2 = strPtr("17:00")
	assert.Equal(t, StateComplete, r.State())
}

func TestApplyPunchFillsSlotsInOrder(t *testing.T) {
	r := &TimeRecord{}

	require.NoError(t, r.ApplyPunch("08:00"))
	require.NoError(t, r.ApplyPunch("12:00"))
	require.NoError(t, r.ApplyPunch("13:00"))
	require.NoError(t, r.ApplyPunch("17:00"))

	assert.Equal(t, "08:00", *r.Entry1)
	assert.Equal(t, "12:00", *r.Exit1)
	assert.Equal(t, "13:00", *r.Entry2)
	assert.Equal(t, "17:00", *r.Exit2)
	require.NotNil(t, r.TotalHours)
	assert.Equal(t, "8.00", *r.TotalHours)
}

func TestApplyPunchRejectsFifthPunch(t *testing.T) {
	r := &TimeRecord{
		Entry1: strPtr("08:00"),
		Exit1:  strPtr("12:00"),
		Entry2: strPtr("13:00"),
		Exit2:  strPtr("17:00"),
	}

	err := r.ApplyPunch("18:00")
	assert.ErrorIs(t, err, ErrDayFull)
}

func TestApplyPunchRejectsShortInterval(t *testing.T) {
	r := &TimeRecord{Entry1: strPtr("08:00")}

	err := r.ApplyPunch("08:59")
	assert.ErrorIs(t, err, ErrPunchTooSoon)

	// exactly one hour later is allowed
	require.NoError(t, r.ApplyPunch("09:00"))
	assert.Equal(t, "09:00", *r.Exit1)
}

func TestApplyPunchRejectsMalformedTime(t *testing.T) {
	r := &TimeRecord{}

	assert.ErrorIs(t, r.ApplyPunch("25:00"), ErrMalformedTime)
	assert.ErrorIs(t, r.ApplyPunch("9am"), ErrMalformedTime)
	assert.Equal(t, StateEmpty, r.State())
}

func TestRecomputeTotal(t *testing.T) {
	cases := []struct {
		name   string
		record TimeRecord
		want   *string
	}{
		{
			name:   "no punches",
			record: TimeRecord{},
			want:   nil,
		},
		{
			name:   "open first pair",
			record: TimeRecord{Entry1: strPtr("08:00")},
			want:   nil,
		},
		{
			// A closed morning pair alone is still an incomplete day.
			name:   "morning only",
			record: TimeRecord{Entry1: strPtr("08:00"), Exit1: strPtr("12:00")},
			want:   nil,
		},
		{
			name: "afternoon still open",
			record: TimeRecord{
				Entry1: strPtr("08:00"), Exit1: strPtr("12:00"),
				Entry2: strPtr("13:00"),
			},
			want: nil,
		},
		{
			name: "full day",
			record: TimeRecord{
				Entry1: strPtr("08:00"), Exit1: strPtr("12:00"),
				Entry2: strPtr("13:00"), Exit2: strPtr("17:00"),
			},
			want: strPtr("8.00"),
		},
		{
			name: "fractional hours",
			record: TimeRecord{
				Entry1: strPtr("08:15"), Exit1: strPtr("12:00"),
				Entry2: strPtr("13:00"), Exit2: strPtr("17:30"),
			},
			want: strPtr("8.25"),
		},
		{
			name: "uneven minutes round to two places",
			record: TimeRecord{
				Entry1: strPtr("09:00"), Exit1: strPtr("12:20"),
				Entry2: strPtr("14:00"), Exit2: strPtr("14:00"),
			},
			want: strPtr("3.33"),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.NoError(t, c.record.RecomputeTotal())
			if c.want == nil {
				assert.Nil(t, c.record.TotalHours)
			} else {
				require.NotNil(t, c.record.TotalHours)
				assert.Equal(t, *c.want, *c.record.TotalHours)
			}
		})
	}
}

func TestRecomputeTotalRejectsReversedPair(t *testing.T) {
	r := &TimeRecord{
		Entry1: strPtr("12:00"), Exit1: strPtr("08:00"),
		Entry2: strPtr("13:00"), Exit2: strPtr("17:00"),
	}
	assert.ErrorIs(t, r.RecomputeTotal(), ErrPunchOutOfOrder)
}
