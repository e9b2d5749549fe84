package calendar

import (
	"testing"
	"time"
)

var now = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestParseEventDateLongForm(t *testing.T) {
	got, ok := ParseEventDate("June 24, 2026", now)
	if !ok {
		t.Fatal("expected a successful parse")
	}
	if got.Year() != 2026 || got.Month() != time.June || got.Day() != 24 {
		t.Fatalf("got %v", got)
	}
}

func TestParseEventDateLongFormDefaultsYear(t *testing.T) {
	got, ok := ParseEventDate("June 24", now)
	if !ok || got.Year() != now.Year() || got.Month() != time.June || got.Day() != 24 {
		t.Fatalf("got %v ok=%v", got, ok)
	}
}

func TestParseEventDateMonthNameIsCaseSensitive(t *testing.T) {
	if _, ok := ParseEventDate("june 24, 2026", now); ok {
		t.Fatal("lowercase month name must not match the month table")
	}
}

func TestParseEventDateISO(t *testing.T) {
	got, ok := ParseEventDate("2026-06-05", now)
	if !ok || got.Year() != 2026 || got.Month() != time.June || got.Day() != 5 {
		t.Fatalf("got %v ok=%v", got, ok)
	}
}

func TestParseEventDateFallbackIsNow(t *testing.T) {
	// The documented behavior: unparseable input silently becomes "now",
	// not an error.
	got, ok := ParseEventDate("Nonsense", now)
	if ok {
		t.Fatal("nonsense input must not report a successful parse")
	}
	if !got.Equal(now) {
		t.Fatalf("fallback was %v, want %v", got, now)
	}
}

func TestMonthGridShape(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		cells := MonthGrid(2026, month, nil)
		if len(cells) != GridCells {
			t.Fatalf("%s: %d cells, want %d", month, len(cells), GridCells)
		}
		if cells[0].Date.Weekday() != time.Sunday {
			t.Fatalf("%s: grid starts on %s", month, cells[0].Date.Weekday())
		}
		// the 1st always lands in the first row
		found := false
		for _, c := range cells[:7] {
			if c.InMonth && c.Date.Day() == 1 {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: day 1 missing from first row", month)
		}
	}
}

func TestMonthGridMultiDayRange(t *testing.T) {
	ev := Event{
		ID:    "f1",
		Title: "Waveform Open Air",
		Type:  "festival",
		Start: time.Date(2026, time.June, 24, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.June, 28, 0, 0, 0, 0, time.UTC),
	}
	cells := MonthGrid(2026, time.June, []Event{ev})

	covered := map[int]bool{}
	for _, c := range cells {
		if !c.InMonth {
			continue
		}
		for _, e := range c.Events {
			if e.ID == "f1" {
				covered[c.Date.Day()] = true
			}
		}
	}

	for day := 24; day <= 28; day++ {
		if !covered[day] {
			t.Fatalf("day %d not covered", day)
		}
	}
	if covered[23] || covered[29] {
		t.Fatalf("range leaked outside [24, 28]: %v", covered)
	}
}

func TestMonthGridOverflowIntoAdjacentMonth(t *testing.T) {
	// May 30 – June 2: the trailing days must show in June's leading
	// out-of-month cells.
	ev := Event{
		ID:    "f2",
		Start: time.Date(2026, time.May, 30, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.June, 2, 0, 0, 0, 0, time.UTC),
	}
	cells := MonthGrid(2026, time.June, []Event{ev})

	for _, c := range cells {
		if c.Date.Month() == time.May && c.Date.Day() == 31 {
			if c.InMonth {
				t.Fatal("May 31 marked as current in June grid")
			}
			if len(c.Events) != 1 {
				t.Fatal("overflow event missing from out-of-month cell")
			}
		}
	}
}

func TestAgendaSortedAndScopedToMonth(t *testing.T) {
	events := []Event{
		{ID: "b1", Type: "booking", Start: time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "f1", Type: "festival", Start: time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "x1", Type: "booking", Start: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)},
	}
	got := Agenda(2026, time.June, events)
	if len(got) != 2 || got[0].ID != "f1" || got[1].ID != "b1" {
		t.Fatalf("agenda wrong: %+v", got)
	}
}

func TestScopeVisibility(t *testing.T) {
	events := []Event{
		{ID: "f1", Type: "festival"},
		{ID: "b1", Type: "booking", ArtistID: "a1"},
		{ID: "b2", Type: "booking", ArtistID: "a2"},
	}

	if got := Scope(events, Visibility{}); len(got) != 3 {
		t.Fatalf("public scope dropped events: %d", len(got))
	}
	if got := Scope(events, Visibility{Admin: true}); len(got) != 3 {
		t.Fatalf("admin scope dropped events: %d", len(got))
	}

	got := Scope(events, Visibility{ArtistID: "a1"})
	if len(got) != 2 {
		t.Fatalf("artist scope: %d events", len(got))
	}
	for _, e := range got {
		if e.Type == "booking" && e.ArtistID != "a1" {
			t.Fatalf("foreign booking leaked: %+v", e)
		}
	}
}
