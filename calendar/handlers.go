package calendar

import (
	"net/http"
	"strconv"
	"time"

	"cadenza/db"
	"cadenza/globals"
	"cadenza/models"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetCalendar renders the merged festival/booking calendar.
//
// GET /api/calendar?year=2026&month=6&view=grid|agenda
//
// Anonymous and regular viewers get the public scope, artists additionally
// see only their own bookings filtered in, admins see everything.
func GetCalendar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	now := time.Now().UTC()

	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if year == 0 {
		year = now.Year()
	}
	monthNum, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if monthNum < 1 || monthNum > 12 {
		monthNum = int(now.Month())
	}
	month := time.Month(monthNum)

	festivals, err := utils.FindAndDecode[models.Festival](ctx, db.FestivalsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch festivals")
		return
	}
	bookings, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	events := make([]Event, 0, len(festivals)+len(bookings))
	for _, f := range festivals {
		start, _ := ParseEventDate(f.Date, now)
		end := start
		if f.DateEnd != "" {
			if e, ok := ParseEventDate(f.DateEnd, now); ok {
				end = e
			}
		}
		events = append(events, Event{
			ID:       f.FestivalID,
			Title:    f.Name,
			Type:     "festival",
			Start:    start,
			End:      end,
			Location: f.Location,
			Slug:     f.Slug,
		})
	}
	for _, b := range bookings {
		start, _ := ParseEventDate(b.Date, now)
		events = append(events, Event{
			ID:       b.BookingID,
			Title:    b.EventName,
			Type:     "booking",
			Start:    start,
			End:      start,
			Location: b.Location,
			ArtistID: b.ArtistID,
			Status:   b.Status,
		})
	}

	events = Scope(events, visibilityFor(r))

	switch r.URL.Query().Get("view") {
	case "agenda":
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{
			"year":   year,
			"month":  monthNum,
			"view":   "agenda",
			"events": Agenda(year, month, events),
		})
	default:
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{
			"year":  year,
			"month": monthNum,
			"view":  "grid",
			"cells": MonthGrid(year, month, events),
		})
	}
}

func visibilityFor(r *http.Request) Visibility {
	roles, _ := r.Context().Value(globals.RoleKey).([]string)
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	for _, role := range roles {
		if role == "admin" {
			return Visibility{Admin: true}
		}
	}
	for _, role := range roles {
		if role == "artist" && userID != "" {
			var artist models.Artist
			err := db.ArtistsCollection.FindOne(r.Context(), bson.M{"creatorid": userID}).Decode(&artist)
			if err == nil {
				return Visibility{ArtistID: artist.ArtistID}
			}
		}
	}
	return Visibility{}
}
