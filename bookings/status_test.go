package bookings

import (
	"testing"

	"cadenza/models"
)

func TestNormalizeStatusLegacyVocabulary(t *testing.T) {
	cases := map[string]string{
		"confirmed": models.BookingApproved,
		"cancelled": models.BookingRejected,
		"pending":   models.BookingPending,
		"approved":  models.BookingApproved,
		"rejected":  models.BookingRejected,
		"completed": models.BookingCompleted,
		"bogus":     models.BookingPending,
	}
	for in, want := range cases {
		if got := NormalizeStatus(in); got != want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

// Filtering by a normalized status must also find documents still stored
// under the legacy spelling, and the legacy spelling itself resolves to the
// same alias set.
func TestStatusAliases(t *testing.T) {
	cases := map[string][]string{
		"approved":  {models.BookingApproved, "confirmed"},
		"confirmed": {models.BookingApproved, "confirmed"},
		"rejected":  {models.BookingRejected, "cancelled"},
		"cancelled": {models.BookingRejected, "cancelled"},
		"completed": {models.BookingCompleted},
		"pending":   {models.BookingPending},
		"bogus":     {models.BookingPending},
	}
	for in, want := range cases {
		got := StatusAliases(in)
		if len(got) != len(want) {
			t.Errorf("StatusAliases(%q) = %v, want %v", in, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("StatusAliases(%q)[%d] = %q, want %q", in, i, got[i], want[i])
			}
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.BookingPending, models.BookingApproved, true},
		{models.BookingPending, models.BookingRejected, true},
		{models.BookingApproved, models.BookingRejected, false},
		{models.BookingRejected, models.BookingApproved, false},
		{models.BookingApproved, models.BookingCompleted, true},
		{models.BookingPending, models.BookingCompleted, true},
		{models.BookingCompleted, models.BookingApproved, false},
		// legacy statuses follow their normalized form
		{"confirmed", models.BookingCompleted, true},
		{"confirmed", models.BookingApproved, false},
		{models.BookingPending, "garbage", false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
