package festivals

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

// The admin UI asks for confirmation before deleting; the external delete
// call must only fire when the operator accepted.
func TestDeleteFestivalDeclined(t *testing.T) {
	called := false
	orig := deleteFestivalFn
	deleteFestivalFn = func(r *http.Request, id string) error {
		called = true
		return nil
	}
	defer func() { deleteFestivalFn = orig }()

	req := httptest.NewRequest("DELETE", "/api/festivals/f123", nil)
	w := httptest.NewRecorder()
	DeleteFestival(w, req, httprouter.Params{{Key: "id", Value: "f123"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("declined delete returned %d", w.Code)
	}
	if called {
		t.Fatal("external delete fired without confirmation")
	}
}

func TestDeleteFestivalAccepted(t *testing.T) {
	called := false
	var gotID string
	orig := deleteFestivalFn
	deleteFestivalFn = func(r *http.Request, id string) error {
		called = true
		gotID = id
		return nil
	}
	defer func() { deleteFestivalFn = orig }()

	req := httptest.NewRequest("DELETE", "/api/festivals/f123?confirm=true", nil)
	w := httptest.NewRecorder()
	DeleteFestival(w, req, httprouter.Params{{Key: "id", Value: "f123"}})

	if w.Code != http.StatusOK {
		t.Fatalf("accepted delete returned %d", w.Code)
	}
	if !called || gotID != "f123" {
		t.Fatalf("external delete not called correctly: called=%v id=%q", called, gotID)
	}
}
