package timezone

import (
	"math"
	"summit/config"
	"summit/shared/constant"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const fallback = "UTC"

var (
	once     sync.Once
	location = time.UTC
)

func load() {
	name := config.Get().App.Timezone
	if name == constant.Empty {
		log.Warn().Msg("no timezone configured, trip calendars use UTC")

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Str("fallback", fallback).Msg("failed to load timezone")

		return
	}

	location = loc

	log.Info().Str("timezone", loc.String()).Msg("application timezone loaded")
}

// Location is the zone trip dates and booking numbers are evaluated in.
func Location() *time.Location {
	once.Do(load)

	return location
}

func Now() time.Time {
	return time.Now().In(Location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Location()) //nolint:wrapcheck
}

// ParseDay reads a YYYY-MM-DD calendar date as midnight in the application zone.
func ParseDay(value string) (time.Time, error) {
	return Parse(constant.DayDateFormat, value)
}

// StartOfDay truncates t to midnight of its calendar day in the application zone.
func StartOfDay(t time.Time) time.Time {
	y, m, d := ToAppTime(t).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, Location())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// DaysBetween counts the started days from one instant to the next on the wall clock of to's
// zone, so a daylight saving shift never adds or drops a day. It is negative when to is earlier.
func DaysBetween(from, to time.Time) int {
	diff := wallClock(to).Sub(wallClock(from.In(to.Location())))

	return int(math.Ceil(diff.Hours() / constant.HoursPerDay))
}

func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	hour, minute, sec := t.Clock()

	return time.Date(y, m, d, hour, minute, sec, t.Nanosecond(), time.UTC)
}
