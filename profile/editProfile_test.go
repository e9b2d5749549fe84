package profile

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cadenza/models"
)

func roleForm(t *testing.T, role string, fields map[string]string) map[string]any {
	t.Helper()
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	req := httptest.NewRequest("PUT", "/api/profile", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := req.ParseForm(); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}
	return parseRoleSection(req, role)
}

func payloadKeys() []string {
	return []string{"artist_profile", "booker_profile", "industry_profile", "guest_profile"}
}

// Every role must produce exactly one non-nil payload; the other three are
// explicitly cleared so a role switch never leaves stale data behind.
func TestRoleSectionExactlyOnePayload(t *testing.T) {
	wantKey := map[string]string{
		"artist":    "artist_profile",
		"creative":  "artist_profile",
		"performer": "artist_profile",
		"booker":    "booker_profile",
		"label":     "industry_profile",
		"manager":   "industry_profile",
		"provider":  "industry_profile",
		"guest":     "guest_profile",
		"fan":       "guest_profile",
	}

	for role, want := range wantKey {
		update := roleForm(t, role, nil)
		for _, key := range payloadKeys() {
			_, present := update[key]
			if !present {
				t.Errorf("role %s: update missing key %s", role, key)
				continue
			}
			if key == want && update[key] == nil {
				t.Errorf("role %s: payload %s is nil", role, key)
			}
			if key != want && update[key] != nil {
				t.Errorf("role %s: stale payload %s = %v", role, key, update[key])
			}
		}
	}
}

func TestArtistSectionParsing(t *testing.T) {
	update := roleForm(t, "artist", map[string]string{
		"alias":            "Nocturne",
		"performance_type": "hybrid",
		"genres":           " Techno,  Ambient ,, Breaks ",
		"bpm_min":          "ASAP",
		"bpm_max":          "174",
		"soundcloud":       "https://soundcloud.com/nocturne",
	})

	artist, ok := update["artist_profile"].(models.ArtistProfile)
	if !ok {
		t.Fatalf("artist_profile has type %T", update["artist_profile"])
	}

	wantGenres := []string{"Techno", "Ambient", "Breaks"}
	if len(artist.Genres) != len(wantGenres) {
		t.Fatalf("genres = %v, want %v", artist.Genres, wantGenres)
	}
	for i, g := range wantGenres {
		if artist.Genres[i] != g {
			t.Errorf("genres[%d] = %q, want %q", i, artist.Genres[i], g)
		}
	}

	// non-numeric BPM falls back to zero rather than erroring
	if artist.BPMMin != 0 {
		t.Errorf("BPMMin = %d, want 0", artist.BPMMin)
	}
	if artist.BPMMax != 174 {
		t.Errorf("BPMMax = %d, want 174", artist.BPMMax)
	}
	if artist.Socials["soundcloud"] != "https://soundcloud.com/nocturne" {
		t.Errorf("soundcloud = %q", artist.Socials["soundcloud"])
	}
}

func TestBookerCapacityFallback(t *testing.T) {
	update := roleForm(t, "booker", map[string]string{
		"organization": "Klubnacht GmbH",
		"capacity":     "sold out",
	})
	booker := update["booker_profile"].(models.BookerProfile)
	if booker.Capacity != 0 {
		t.Errorf("Capacity = %d, want 0", booker.Capacity)
	}
	if booker.Organization != "Klubnacht GmbH" {
		t.Errorf("Organization = %q", booker.Organization)
	}
}

// The demo submission URL is a label-only field; managers and providers
// share the industry shape but never carry it.
func TestDemoSubmitURLLabelOnly(t *testing.T) {
	fields := map[string]string{
		"organization":    "Voltage Records",
		"demo_submit_url": "https://voltage.example/demos",
	}

	label := roleForm(t, "label", fields)["industry_profile"].(models.IndustryProfile)
	if label.DemoSubmitURL != "https://voltage.example/demos" {
		t.Errorf("label DemoSubmitURL = %q", label.DemoSubmitURL)
	}

	for _, role := range []string{"manager", "provider"} {
		got := roleForm(t, role, fields)["industry_profile"].(models.IndustryProfile)
		if got.DemoSubmitURL != "" {
			t.Errorf("role %s carried DemoSubmitURL %q", role, got.DemoSubmitURL)
		}
	}
}

func TestGuestPreferredGenres(t *testing.T) {
	update := roleForm(t, "fan", map[string]string{
		"preferred_genres": "Dub Techno, House",
	})
	guest := update["guest_profile"].(models.GuestProfile)
	if len(guest.PreferredGenres) != 2 || guest.PreferredGenres[0] != "Dub Techno" {
		t.Errorf("PreferredGenres = %v", guest.PreferredGenres)
	}
}
