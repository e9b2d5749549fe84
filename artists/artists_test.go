package artists

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"cadenza/globals"
	"cadenza/models"
)

func formRequest(t *testing.T, caller string, fields map[string]string) *http.Request {
	t.Helper()
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/artists", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if caller != "" {
		req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, caller))
	}
	if err := req.ParseForm(); err != nil {
		t.Fatalf("ParseForm: %v", err)
	}
	return req
}

// Edits without an explicit owner must keep the record linked to its
// original account; the editing operator never becomes the owner as a side
// effect.
func TestUpdateKeepsOwner(t *testing.T) {
	existing := models.Artist{
		ArtistID:  "a1",
		Name:      "Signal Moth",
		CreatorID: "u-artist",
	}

	req := formRequest(t, "u-operator", map[string]string{"bio": "new bio"})
	artist, updateData := parseArtistForm(req, &existing)

	if artist.CreatorID != "u-artist" {
		t.Errorf("CreatorID = %q, want u-artist", artist.CreatorID)
	}
	if _, touched := updateData["creatorid"]; touched {
		t.Errorf("updateData rewrote creatorid to %v", updateData["creatorid"])
	}
}

func TestExplicitOwnerAssignment(t *testing.T) {
	existing := models.Artist{ArtistID: "a1", Name: "Signal Moth", CreatorID: "u-old"}

	req := formRequest(t, "u-operator", map[string]string{"owner": "u-new"})
	artist, updateData := parseArtistForm(req, &existing)

	if artist.CreatorID != "u-new" {
		t.Errorf("CreatorID = %q, want u-new", artist.CreatorID)
	}
	if updateData["creatorid"] != "u-new" {
		t.Errorf("updateData creatorid = %v, want u-new", updateData["creatorid"])
	}
}

func TestCreateDefaultsOwnerToCaller(t *testing.T) {
	req := formRequest(t, "u-operator", map[string]string{"name": "Signal Moth"})
	artist, updateData := parseArtistForm(req, nil)

	if artist.CreatorID != "u-operator" {
		t.Errorf("CreatorID = %q, want u-operator", artist.CreatorID)
	}
	if updateData["creatorid"] != "u-operator" {
		t.Errorf("updateData creatorid = %v, want u-operator", updateData["creatorid"])
	}
}
