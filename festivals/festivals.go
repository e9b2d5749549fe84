package festivals

import (
	"net/http"
	"strconv"
	"time"

	"cadenza/calendar"
	"cadenza/db"
	"cadenza/models"
	"cadenza/mq"
	"cadenza/slugify"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func parseFestivalForm(r *http.Request, existing *models.Festival) (models.Festival, bson.M) {
	var f models.Festival
	updateData := bson.M{}

	if existing != nil {
		f = *existing
	}

	assignField := func(key string, target *string) {
		if val := r.FormValue(key); val != "" {
			*target = val
			updateData[key] = val
		}
	}

	assignField("name", &f.Name)
	assignField("location", &f.Location)
	assignField("country", &f.Country)
	assignField("date", &f.Date)
	assignField("dateEnd", &f.DateEnd)
	assignField("type", &f.Type)
	assignField("description", &f.Description)

	if val := r.FormValue("capacity"); val != "" {
		f.Capacity = utils.ParseIntOrZero(val)
		updateData["capacity"] = f.Capacity
	}

	if val := r.FormValue("artistSlugs"); val != "" {
		f.ArtistSlugs = utils.SplitCSV(val)
		updateData["artistSlugs"] = f.ArtistSlugs
	}
	if val := r.FormValue("stages"); val != "" {
		f.Stages = utils.SplitCSV(val)
		updateData["stages"] = f.Stages
	}
	if val := r.FormValue("highlights"); val != "" {
		f.Highlights = utils.SplitCSV(val)
		updateData["highlights"] = f.Highlights
	}

	if val := r.FormValue("lat"); val != "" {
		f.Coordinates.Lat, _ = strconv.ParseFloat(val, 64)
		updateData["coordinates"] = f.Coordinates
	}
	if val := r.FormValue("lng"); val != "" {
		f.Coordinates.Lng, _ = strconv.ParseFloat(val, 64)
		updateData["coordinates"] = f.Coordinates
	}

	if f.Name != "" && (existing == nil || r.FormValue("name") != "") {
		f.Slug = slugify.From(f.Name)
		updateData["slug"] = f.Slug
	}

	f.CreatorID = utils.GetUserIDFromRequest(r)
	if f.CreatorID != "" {
		updateData["creatorid"] = f.CreatorID
	} else if existing != nil {
		f.CreatorID = existing.CreatorID
	}

	return f, updateData
}

// validDates rejects writes whose dates parse with neither recognized
// format. Reads keep the lenient "now" fallback; the write path is where
// bad data is stopped.
func validDates(f models.Festival) bool {
	now := time.Now()
	if _, ok := calendar.ParseEventDate(f.Date, now); !ok {
		return false
	}
	if f.DateEnd != "" {
		if _, ok := calendar.ParseEventDate(f.DateEnd, now); !ok {
			return false
		}
	}
	return true
}

func CreateFestival(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	festival, _ := parseFestivalForm(r, nil)
	if festival.Name == "" || festival.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and date are required")
		return
	}
	if !validDates(festival) {
		utils.RespondWithError(w, http.StatusBadRequest, `Date must be "Month DD, YYYY" or "YYYY-MM-DD"`)
		return
	}

	festival.FestivalID = "f" + utils.GenerateRandomString(12)

	if _, err := db.FestivalsCollection.InsertOne(ctx, festival); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create festival")
		return
	}

	go mq.Emit(ctx, "festival-created", models.Index{
		EntityType: "festival", EntityId: festival.FestivalID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, festival)
}

func UpdateFestival(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	idParam := ps.ByName("id")

	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	var existing models.Festival
	if err := db.FestivalsCollection.FindOne(ctx, bson.M{"festivalid": idParam}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Festival not found")
		return
	}

	merged, updateData := parseFestivalForm(r, &existing)
	if len(updateData) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "No changes detected"})
		return
	}
	if !validDates(merged) {
		utils.RespondWithError(w, http.StatusBadRequest, `Date must be "Month DD, YYYY" or "YYYY-MM-DD"`)
		return
	}

	_, err := db.FestivalsCollection.UpdateOne(ctx, bson.M{"festivalid": idParam}, bson.M{"$set": updateData})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update festival")
		return
	}

	go mq.Emit(ctx, "festival-updated", models.Index{
		EntityType: "festival", EntityId: idParam, Method: "PUT",
	})

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Festival updated"})
}

// deleteFestivalFn performs the external delete; a seam for tests.
var deleteFestivalFn = func(r *http.Request, festivalID string) error {
	_, err := db.FestivalsCollection.DeleteOne(r.Context(), bson.M{"festivalid": festivalID})
	return err
}

// DeleteFestival removes a festival. The admin UI asks for confirmation
// first; the external delete call fires only when the request carries
// confirm=true.
func DeleteFestival(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	festivalID := ps.ByName("id")
	if festivalID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "festivalID is required")
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		utils.RespondWithError(w, http.StatusBadRequest, "Deletion requires confirmation")
		return
	}

	if err := deleteFestivalFn(r, festivalID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete festival")
		return
	}

	go mq.Emit(r.Context(), "festival-deleted", models.Index{
		EntityType: "festival", EntityId: festivalID, Method: "DELETE",
	})

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Festival deleted successfully"})
}
