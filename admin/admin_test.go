package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T, username, password string) Authenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &jwtAuthenticator{
		username:     username,
		passwordHash: string(hash),
		ttl:          time.Hour,
	}
}

func TestAuthenticateRoundTrip(t *testing.T) {
	auth := newTestAuthenticator(t, "operator", "hunter22")

	token, err := auth.Authenticate("operator", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if token == "" {
		t.Fatal("Authenticate returned empty token")
	}

	principal, err := auth.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if principal.Username != "operator" || principal.Role != "admin" {
		t.Errorf("principal = %+v, want operator/admin", principal)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	auth := newTestAuthenticator(t, "operator", "hunter22")

	cases := []struct{ user, pass string }{
		{"operator", "wrong"},
		{"intruder", "hunter22"},
		{"", ""},
	}
	for _, c := range cases {
		if _, err := auth.Authenticate(c.user, c.pass); err != ErrBadCredentials {
			t.Errorf("Authenticate(%q, %q) err = %v, want ErrBadCredentials", c.user, c.pass, err)
		}
	}
}

func TestValidateRejectsGarbageToken(t *testing.T) {
	auth := newTestAuthenticator(t, "operator", "hunter22")

	for _, token := range []string{"", "not-a-jwt", "aaaa.bbbb.cccc"} {
		if _, err := auth.Validate(token); err != ErrInvalidToken {
			t.Errorf("Validate(%q) err = %v, want ErrInvalidToken", token, err)
		}
	}
}

func deleteUserRequest(t *testing.T, confirm bool) *httptest.ResponseRecorder {
	t.Helper()
	url := "/api/admin/users/u42"
	if confirm {
		url += "?confirm=true"
	}
	req := httptest.NewRequest(http.MethodDelete, url, nil)
	rec := httptest.NewRecorder()
	DeleteUser(rec, req, httprouter.Params{{Key: "id", Value: "u42"}})
	return rec
}

func TestDeleteUserDeclined(t *testing.T) {
	orig, origInval := deleteUserFn, invalidateProfileFn
	defer func() { deleteUserFn, invalidateProfileFn = orig, origInval }()
	invalidateProfileFn = func(string) {}

	called := false
	deleteUserFn = func(ctx context.Context, userID string) error {
		called = true
		return nil
	}

	rec := deleteUserRequest(t, false)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if called {
		t.Error("delete fired without confirmation")
	}
}

func TestDeleteUserAccepted(t *testing.T) {
	orig, origInval := deleteUserFn, invalidateProfileFn
	defer func() { deleteUserFn, invalidateProfileFn = orig, origInval }()
	invalidateProfileFn = func(string) {}

	var gotID string
	deleteUserFn = func(ctx context.Context, userID string) error {
		gotID = userID
		return nil
	}

	rec := deleteUserRequest(t, true)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotID != "u42" {
		t.Errorf("deleted id = %q, want u42", gotID)
	}
}

// Deleting an account must also drop its cached profile so the stale record
// cannot be served afterwards.
func TestDeleteUserDropsCachedProfile(t *testing.T) {
	orig, origInval := deleteUserFn, invalidateProfileFn
	defer func() { deleteUserFn, invalidateProfileFn = orig, origInval }()

	deleteUserFn = func(ctx context.Context, userID string) error { return nil }

	var invalidated string
	invalidateProfileFn = func(userID string) { invalidated = userID }

	rec := deleteUserRequest(t, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if invalidated != "u42" {
		t.Errorf("invalidated profile = %q, want u42", invalidated)
	}
}
