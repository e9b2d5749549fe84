package bookings

import (
	"encoding/json"
	"net/http"
	"time"

	"cadenza/db"
	"cadenza/models"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func genID() string {
	return "b" + utils.GenerateRandomDigitString(16)
}

// CreateBooking files a booking request against an artist. Requests start
// pending; the admin panel advances them.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input models.Booking
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.ArtistID == "" || input.EventName == "" || input.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "artistid, eventName and date are required")
		return
	}

	// The artist reference is weak but a booking against nothing is noise.
	if err := db.ArtistsCollection.FindOne(ctx, bson.M{"artistid": input.ArtistID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}

	booking := models.Booking{
		BookingID:   genID(),
		ArtistID:    input.ArtistID,
		EventName:   input.EventName,
		Date:        input.Date,
		Location:    input.Location,
		City:        input.City,
		Country:     input.Country,
		Status:      models.BookingPending,
		OfferAmount: input.OfferAmount,
		CreatedAt:   time.Now().Unix(),
	}

	if _, err := db.BookingsCollection.InsertOne(ctx, booking); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, booking)
}

// GetBookings lists bookings, optionally filtered by artist or status.
func GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := bson.M{}
	if artistID := q.Get("artistid"); artistID != "" {
		filter["artistid"] = artistID
	}
	if status := q.Get("status"); status != "" {
		filter["status"] = bson.M{"$in": StatusAliases(status)}
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: -1}})

	bookings, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	for i := range bookings {
		bookings[i].Status = NormalizeStatus(bookings[i].Status)
	}

	total, err := db.BookingsCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count bookings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"bookings": bookings,
		"total":    total,
	})
}

func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{"bookingid": ps.ByName("id")}).Decode(&booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	booking.Status = NormalizeStatus(booking.Status)
	utils.RespondWithJSON(w, http.StatusOK, booking)
}
