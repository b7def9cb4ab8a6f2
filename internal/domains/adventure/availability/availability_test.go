package availability_test

import (
	"summit/internal/domains/adventure/availability"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(month time.Month, day int) time.Time {
	return time.Date(2026, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		blackouts  []time.Time
		windows    []availability.Window
		start      time.Time
		end        time.Time
		bookable   bool
		reasonPart string
	}{
		{
			name:     "no blackouts and no windows is open",
			start:    date(time.May, 1),
			end:      date(time.May, 5),
			bookable: true,
		},
		{
			name:       "blackout inside range",
			blackouts:  []time.Time{date(time.May, 3)},
			start:      date(time.May, 1),
			end:        date(time.May, 5),
			reasonPart: "2026-05-03",
		},
		{
			name:       "blackout on the last day counts",
			blackouts:  []time.Time{date(time.May, 5).Add(15 * time.Hour)},
			start:      date(time.May, 1),
			end:        date(time.May, 5),
			reasonPart: "blackout date 2026-05-05",
		},
		{
			name:      "blackout outside range",
			blackouts: []time.Time{date(time.May, 6)},
			start:     date(time.May, 1),
			end:       date(time.May, 5),
			bookable:  true,
		},
		{
			name: "covering unavailable window blocks",
			windows: []availability.Window{
				{Start: date(time.April, 25), End: date(time.May, 10), Available: false, Reason: "monsoon"},
			},
			start:      date(time.May, 1),
			end:        date(time.May, 5),
			reasonPart: "monsoon",
		},
		{
			name: "partially overlapping unavailable window does not block",
			windows: []availability.Window{
				{Start: date(time.May, 3), End: date(time.May, 10), Available: false, Reason: "monsoon"},
			},
			start:    date(time.May, 1),
			end:      date(time.May, 5),
			bookable: true,
		},
		{
			name: "covering available window allows",
			windows: []availability.Window{
				{Start: date(time.April, 1), End: date(time.June, 1), Available: true},
			},
			start:    date(time.May, 1),
			end:      date(time.May, 5),
			bookable: true,
		},
		{
			name: "window with exact bounds blocks",
			windows: []availability.Window{
				{Start: date(time.May, 1), End: date(time.May, 5), Available: false},
			},
			start:      date(time.May, 1).Add(9 * time.Hour),
			end:        date(time.May, 5).Add(18 * time.Hour),
			reasonPart: "unavailable",
		},
		{
			name:       "inverted range",
			start:      date(time.May, 5),
			end:        date(time.May, 1),
			reasonPart: availability.ReasonInvalidRange,
		},
		{
			name:     "single day range",
			start:    date(time.May, 1),
			end:      date(time.May, 1),
			bookable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := availability.Check(tt.blackouts, tt.windows, tt.start, tt.end)

			assert.Equal(t, tt.bookable, res.Bookable)

			if tt.bookable {
				assert.Empty(t, res.Reason)
			} else {
				assert.Contains(t, res.Reason, tt.reasonPart)
			}
		})
	}
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("NPT", 5*3600+45*60)
	in := time.Date(2026, time.May, 1, 23, 59, 0, 0, loc)

	assert.Equal(t, time.Date(2026, time.May, 1, 0, 0, 0, 0, loc), availability.Day(in))
}
