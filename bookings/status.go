package bookings

import (
	"encoding/json"
	"log"
	"net/http"

	"cadenza/db"
	"cadenza/models"
	"cadenza/stores"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// LiveUpdates broadcasts every status change to subscribers (the admin
// websocket stream). Injected as a package store so tests can swap it.
var LiveUpdates = stores.New(models.Booking{})

// NormalizeStatus maps the legacy seed vocabulary {confirmed, pending,
// cancelled} onto the authoritative one {pending, approved, rejected,
// completed}. The mapping is one-way: normalized values are what the API
// serves, but nothing is rewritten in the store until the owner signs off
// on a migration.
func NormalizeStatus(status string) string {
	switch status {
	case "confirmed":
		log.Printf("[bookings] legacy status %q read as %q", status, models.BookingApproved)
		return models.BookingApproved
	case "cancelled":
		log.Printf("[bookings] legacy status %q read as %q", status, models.BookingRejected)
		return models.BookingRejected
	case models.BookingPending, models.BookingApproved, models.BookingRejected, models.BookingCompleted:
		return status
	default:
		log.Printf("[bookings] unknown status %q read as %q", status, models.BookingPending)
		return models.BookingPending
	}
}

// StatusAliases lists every stored spelling that reads back as the given
// status, so filtered queries also catch documents still carrying the
// legacy vocabulary.
func StatusAliases(status string) []string {
	switch NormalizeStatus(status) {
	case models.BookingApproved:
		return []string{models.BookingApproved, "confirmed"}
	case models.BookingRejected:
		return []string{models.BookingRejected, "cancelled"}
	case models.BookingCompleted:
		return []string{models.BookingCompleted}
	default:
		return []string{models.BookingPending}
	}
}

// CanTransition encodes the admin panel's rules: approve/reject only from
// pending; completed may be set from any state (an external settlement
// process owns that edge).
func CanTransition(from, to string) bool {
	from = NormalizeStatus(from)
	switch to {
	case models.BookingApproved, models.BookingRejected:
		return from == models.BookingPending
	case models.BookingCompleted:
		return true
	default:
		return false
	}
}

// UpdateBookingStatus advances a booking.
//
// PUT /api/bookings/:id/status  body: {"status": "approved"}
func UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	bookingID := ps.ByName("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingid": bookingID}).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if !CanTransition(booking.Status, input.Status) {
		utils.RespondWithError(w, http.StatusConflict, "Status transition not allowed")
		return
	}

	_, err := db.BookingsCollection.UpdateOne(ctx,
		bson.M{"bookingid": bookingID},
		bson.M{"$set": bson.M{"status": input.Status}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	booking.Status = input.Status
	LiveUpdates.Set(booking)

	utils.RespondWithJSON(w, http.StatusOK, booking)
}
