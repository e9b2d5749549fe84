package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cadenza/middleware"
	"cadenza/models"

	"github.com/julienschmidt/httprouter"
)

func TestRegistrationRoleWhitelist(t *testing.T) {
	allowed := []string{
		"artist", "creative", "performer",
		"booker",
		"label", "manager", "provider",
		"guest", "fan",
	}
	for _, role := range allowed {
		got, ok := registrationRole(role)
		if !ok || got != role {
			t.Errorf("registrationRole(%q) = %q, %v; want accepted", role, got, ok)
		}
	}

	if got, ok := registrationRole(""); !ok || got != "guest" {
		t.Errorf("registrationRole(\"\") = %q, %v; want guest default", got, ok)
	}

	for _, role := range []string{"admin", "Admin", "root", "moderator", "guest "} {
		if _, ok := registrationRole(role); ok {
			t.Errorf("registrationRole(%q) accepted; want rejected", role)
		}
	}
}

// A token minted through registration must never open an admin route, no
// matter what role the request body asked for.
func TestRegistrationTokenNeverGrantsAdmin(t *testing.T) {
	roleInputs := append([]string{""},
		models.ArtistRoles[0], models.BookerRoles[0], models.IndustryRoles[0], models.GuestRoles[0])

	for _, input := range roleInputs {
		role, ok := registrationRole(input)
		if !ok {
			t.Fatalf("registrationRole(%q) unexpectedly rejected", input)
		}

		token, err := generateAccessToken(models.User{
			UserID:   "u1",
			Username: "newcomer",
			Role:     []string{role},
		})
		if err != nil {
			t.Fatalf("generateAccessToken: %v", err)
		}

		reached := false
		handler := middleware.RequireRole("admin", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
			reached = true
		})

		req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler(rec, req, nil)

		if reached || rec.Code != http.StatusForbidden {
			t.Errorf("role input %q: admin route reached=%v status=%d, want blocked with 403",
				input, reached, rec.Code)
		}
	}
}
