// Package availability decides whether a date range of an adventure can be booked.
//
// A range is bookable when none of its days is a blackout date and no window that fully
// covers the range is marked unavailable. Ranges without a covering window are open.
package availability

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

const (
	ReasonInvalidRange = "start date is after end date"
)

type Window struct {
	Start     time.Time
	End       time.Time
	Available bool
	Reason    string
}

type Result struct {
	Bookable bool   `json:"bookable"`
	Reason   string `json:"reason,omitempty"`
}

// Day truncates t to midnight of its calendar day in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (w Window) covers(start, end time.Time) bool {
	return !Day(w.Start).After(start) && !Day(w.End).Before(end)
}

func Check(blackouts []time.Time, windows []Window, start, end time.Time) Result {
	start, end = Day(start), Day(end)

	if start.After(end) {
		return Result{Reason: ReasonInvalidRange}
	}

	for _, blackout := range blackouts {
		day := Day(blackout)
		if !day.Before(start) && !day.After(end) {
			return Result{Reason: fmt.Sprintf("blackout date %s", day.Format(dayLayout))}
		}
	}

	for _, window := range windows {
		if window.Available || !window.covers(start, end) {
			continue
		}

		reason := window.Reason
		if reason == "" {
			reason = "unavailable"
		}

		return Result{Reason: fmt.Sprintf("window %s to %s: %s", Day(window.Start).Format(dayLayout), Day(window.End).Format(dayLayout), reason)}
	}

	return Result{Bookable: true}
}
