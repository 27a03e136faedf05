package timesheet

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// RecordState tells which punch slot a record expects next.
type RecordState int

const (
	StateEmpty RecordState = iota
	StateHasEntry1
	StateHasExit1
	StateHasEntry2
	StateComplete
)

func (s RecordState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateHasEntry1:
		return "has_entry1"
	case StateHasExit1:
		return "has_exit1"
	case StateHasEntry2:
		return "has_entry2"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// MinPunchInterval is the shortest allowed gap between consecutive punches.
const MinPunchInterval = 60

// TimeRecord holds the up-to-four daily punches of one user.
// Clock times are stored as "HH:MM" strings, date as "YYYY-MM-DD".
type TimeRecord struct {
	ID         string
	UserID     string
	Date       string
	Entry1     *string
	Exit1      *string
	Entry2     *string
	Exit2      *string
	TotalHours *string
	IsAdjusted bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClockTime converts an "HH:MM" string to minutes since midnight.
func ParseClockTime(s string) (int, error) {
	m := clockTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// FormatClockTime renders minutes since midnight as "HH:MM".
func FormatClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// State derives the record's position in the punch sequence from its
// filled slots. Slots are always filled in order, so the first nil wins.
func (r *TimeRecord) State() RecordState {
	switch {
	case r.Entry1 == nil:
		return StateEmpty
	case r.Exit1 == nil:
		return StateHasEntry1
	case r.Entry2 == nil:
		return StateHasExit1
	case r.Exit2 == nil:
		return StateHasEntry2
	}
	return StateComplete
}

// LastPunch returns the most recent punch time, or nil for an empty record.
func (r *TimeRecord) LastPunch() *string {
	switch r.State() {
	case StateHasEntry1:
		return r.Entry1
	case StateHasExit1:
		return r.Exit1
	case StateHasEntry2:
		return r.Entry2
	case StateComplete:
		return r.Exit2
	}
	return nil
}

// ApplyPunch writes the given clock time into the next open slot.
// It rejects a full record and any punch closer than MinPunchInterval
// to the previous one, then recomputes the worked total.
func (r *TimeRecord) ApplyPunch(clockTime string) error {
	minutes, err := ParseClockTime(clockTime)
	if err != nil {
		return err
	}

	state := r.State()
	if state == StateComplete {
		return ErrDayFull
	}

	if last := r.LastPunch(); last != nil {
		lastMinutes, err := ParseClockTime(*last)
		if err != nil {
			return err
		}
		if minutes-lastMinutes < MinPunchInterval {
			return ErrPunchTooSoon
		}
	}

	t := clockTime
	switch state {
	case StateEmpty:
		r.Entry1 = &t
	case StateHasEntry1:
		r.Exit1 = &t
	case StateHasExit1:
		r.Entry2 = &t
	case StateHasEntry2:
		r.Exit2 = &t
	}

	return r.RecomputeTotal()
}

// SetPunches replaces all four slots at once, as a manager adjustment
// does. Filled slots must form a prefix of the punch sequence and be
// strictly increasing; the minimum interval rule does not apply here.
func (r *TimeRecord) SetPunches(entry1, exit1, entry2, exit2 *string) error {
	slots := []*string{entry1, exit1, entry2, exit2}

	sawGap := false
	prev := -1
	for _, slot := range slots {
		if slot == nil {
			sawGap = true
			continue
		}
		if sawGap {
			return fmt.Errorf("%w: punches must fill slots in order", ErrPunchOutOfOrder)
		}
		minutes, err := ParseClockTime(*slot)
		if err != nil {
			return err
		}
		if minutes <= prev {
			return fmt.Errorf("%w: %s", ErrPunchOutOfOrder, *slot)
		}
		prev = minutes
	}

	r.Entry1 = entry1
	r.Exit1 = exit1
	r.Entry2 = entry2
	r.Exit2 = exit2

	return r.RecomputeTotal()
}

// RecomputeTotal derives TotalHours from the entry/exit pairs. A day
// counts only once all four slots are set; anything less keeps a nil
// total, so partial days never feed the hour bank.
func (r *TimeRecord) RecomputeTotal() error {
	if r.State() != StateComplete {
		r.TotalHours = nil
		return nil
	}

	morning, err := pairMinutes(*r.Entry1, *r.Exit1)
	if err != nil {
		return err
	}
	afternoon, err := pairMinutes(*r.Entry2, *r.Exit2)
	if err != nil {
		return err
	}

	total := FormatHours(float64(morning+afternoon) / 60.0)
	r.TotalHours = &total
	return nil
}

func pairMinutes(entry, exit string) (int, error) {
	start, err := ParseClockTime(entry)
	if err != nil {
		return 0, err
	}
	end, err := ParseClockTime(exit)
	if err != nil {
		return 0, err
	}
	if end < start {
		return 0, fmt.Errorf("%w: exit %s before entry %s", ErrPunchOutOfOrder, exit, entry)
	}
	return end - start, nil
}

// FormatHours renders an hour amount with two decimal places, e.g. "8.00".
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}
