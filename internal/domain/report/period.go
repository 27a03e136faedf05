package report

import "time"

// Period is the payroll window reported under a reference month.
type Period struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod maps a "YYYY-MM" reference month to its payroll window,
// which runs from the 20th two months earlier through the 19th of the
// previous month. "2024-03" therefore covers 2024-01-20 to 2024-02-19.
func ResolvePeriod(month string) (Period, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return Period{}, ErrInvalidMonth
	}

	return Period{
		Start: first.AddDate(0, -2, 19),
		End:   first.AddDate(0, -1, 18),
	}, nil
}

// Days lists every date in the period, inclusive, as "YYYY-MM-DD".
func (p Period) Days() []string {
	var days []string
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format("2006-01-02"))
	}
	return days
}
