package timezone_test

import (
	"summit/shared/timezone"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	require.NotNil(t, timezone.Location())
	assert.Equal(t, timezone.Location(), timezone.Now().Location())
}

func TestParseDay(t *testing.T) {
	day, err := timezone.ParseDay("2026-12-25")
	require.NoError(t, err)

	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.December, day.Month())
	assert.Equal(t, 25, day.Day())
	assert.Equal(t, 0, day.Hour())

	_, err = timezone.ParseDay("25/12/2026")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	at := timezone.ToAppTime(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)).Add(15*time.Hour + 42*time.Minute)

	start := timezone.StartOfDay(at)

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, at.Day(), start.Day())
	assert.True(t, !start.After(at))
}

func TestFormat(t *testing.T) {
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, timezone.ToAppTime(at).Format(time.RFC3339), timezone.Format(at, time.RFC3339))
}

func TestDaysBetween(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{name: "across fall back", from: time.Date(2026, time.October, 24, 0, 0, 0, 0, berlin), to: time.Date(2026, time.October, 27, 0, 0, 0, 0, berlin), want: 3},
		{name: "across spring forward", from: time.Date(2026, time.March, 28, 0, 0, 0, 0, berlin), to: time.Date(2026, time.March, 30, 0, 0, 0, 0, berlin), want: 2},
		{name: "partial day counts", from: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), to: time.Date(2026, time.October, 3, 2, 0, 0, 0, time.UTC), want: 3},
		{name: "same instant", from: time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC), to: time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC), want: 0},
		{name: "backwards", from: time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC), to: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), want: -1},
		{name: "mixed zones use the destination clock", from: time.Date(2026, time.October, 24, 22, 0, 0, 0, time.UTC), to: time.Date(2026, time.October, 27, 0, 0, 0, 0, berlin), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.DaysBetween(tt.from, tt.to))
		})
	}
}
