package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	cases := []struct {
		month string
		start string
		end   string
	}{
		{"2024-03", "2024-01-20", "2024-02-19"},
		{"2024-01", "2023-11-20", "2023-12-19"},
		{"2024-02", "2023-12-20", "2024-01-19"},
		{"2025-12", "2025-10-20", "2025-11-19"},
	}

	for _, c := range cases {
		p, err := ResolvePeriod(c.month)
		require.NoError(t, err, "month %s", c.month)
		assert.Equal(t, c.start, p.Start.Format("2006-01-02"), "month %s", c.month)
		assert.Equal(t, c.end, p.End.Format("2006-01-02"), "month %s", c.month)
	}
}

func TestResolvePeriodRejectsBadInput(t *testing.T) {
	for _, month := range []string{"", "2024", "2024-13", "03-2024", "2024-03-01"} {
		_, err := ResolvePeriod(month)
		assert.ErrorIs(t, err, ErrInvalidMonth, "month %q", month)
	}
}

func TestPeriodDays(t *testing.T) {
	p := Period{
		Start: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 19, 0, 0, 0, 0, time.UTC),
	}

	days := p.Days()
	require.Len(t, days, 31)
	assert.Equal(t, "2024-01-20", days[0])
	assert.Equal(t, "2024-02-19", days[len(days)-1])
}
