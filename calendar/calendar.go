// Package calendar merges festival and booking timelines into one
// chronologically sorted, month-bucketed view.
package calendar

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Event is one calendar entry after source normalization. Festivals carry a
// Slug for the detail link; bookings carry the owning ArtistID.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Type     string    `json:"type"` // festival, booking
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Location string    `json:"location"`
	Slug     string    `json:"slug,omitempty"`
	ArtistID string    `json:"artistid,omitempty"`
	Status   string    `json:"status,omitempty"`
}

// monthTable is the fixed 12-entry table the long-form parser matches
// against, by exact case-sensitive English name.
var monthTable = map[string]time.Month{
	"January": time.January, "February": time.February, "March": time.March,
	"April": time.April, "May": time.May, "June": time.June,
	"July": time.July, "August": time.August, "September": time.September,
	"October": time.October, "November": time.November, "December": time.December,
}

var longForm = regexp.MustCompile(`^([A-Za-z]+) (\d{1,2})(?:, (\d{4}))?$`)

// ParseEventDate parses the two recognized date formats:
// "<MonthName> <Day>[, <Year>]" (year defaults to now's year) and strict
// 10-character "YYYY-MM-DD". Anything else falls back to now; ok reports
// whether a real parse happened. The fallback is silent on reads; write
// paths are expected to reject !ok input.
func ParseEventDate(s string, now time.Time) (t time.Time, ok bool) {
	if m := longForm.FindStringSubmatch(s); m != nil {
		if month, found := monthTable[m[1]]; found {
			day, _ := strconv.Atoi(m[2])
			year := now.Year()
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
			}
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
		}
	}

	if len(s) == 10 {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			return parsed, true
		}
	}

	return now, false
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Covers reports whether the event's [Start, End] range includes the given
// day, time-of-day ignored. A zero End defaults to Start.
func (e Event) Covers(day time.Time) bool {
	start := dayOf(e.Start)
	end := start
	if !e.End.IsZero() {
		end = dayOf(e.End)
	}
	d := dayOf(day)
	return !d.Before(start) && !d.After(end)
}

// Cell is one day of the 42-cell month grid.
type Cell struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"inMonth"`
	Events  []Event   `json:"events"`
}

// GridCells is the fixed size of a month grid: 6 rows of 7 days.
const GridCells = 42

// MonthGrid builds the 42-cell grid for the displayed month, starting from
// the Sunday on or before the 1st. Cells outside the month are marked
// non-current but still list overflow events that range into them.
func MonthGrid(year int, month time.Month, events []Event) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]Cell, GridCells)
	for i := range cells {
		day := start.AddDate(0, 0, i)
		cell := Cell{Date: day, InMonth: day.Month() == month && day.Year() == year, Events: []Event{}}
		for _, e := range events {
			if e.Covers(day) {
				cell.Events = append(cell.Events, e)
			}
		}
		cells[i] = cell
	}
	return cells
}

// Agenda returns the month's events as a flat chronological list: every
// event whose range touches the displayed month, sorted by start date,
// original order preserved on ties.
func Agenda(year int, month time.Month, events []Event) []Event {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	out := []Event{}
	for _, e := range events {
		start := dayOf(e.Start)
		end := start
		if !e.End.IsZero() {
			end = dayOf(e.End)
		}
		if !end.Before(monthStart) && !start.After(monthEnd) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// Visibility scopes which bookings a viewer sees; festivals are always
// public.
type Visibility struct {
	Admin    bool
	ArtistID string // non-empty: artist-scoped view
}

// Scope applies the role-scoped visibility filter before aggregation.
func Scope(events []Event, v Visibility) []Event {
	if v.Admin {
		return events
	}
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Type == "booking" && v.ArtistID != "" && e.ArtistID != v.ArtistID {
			continue
		}
		out = append(out, e)
	}
	return out
}
