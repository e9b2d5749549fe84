package artists

import (
	"encoding/json"
	"net/http"

	"cadenza/db"
	"cadenza/models"
	"cadenza/mq"
	"cadenza/slugify"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func parseArtistForm(r *http.Request, existing *models.Artist) (models.Artist, bson.M) {
	var artist models.Artist
	updateData := bson.M{}

	if existing != nil {
		artist = *existing
	}

	assignField := func(key string, target *string) {
		if val := r.FormValue(key); val != "" {
			*target = val
			updateData[key] = val
		}
	}

	assignField("name", &artist.Name)
	assignField("type", &artist.Type)
	assignField("location", &artist.Location)
	assignField("country", &artist.Country)
	assignField("bio", &artist.Bio)
	assignField("image", &artist.Image)
	assignField("availability", &artist.Availability)

	if artist.Availability == "" {
		artist.Availability = "available"
		updateData["availability"] = artist.Availability
	}

	if val := r.FormValue("genres"); val != "" {
		artist.Genres = utils.SplitTags(val)
		updateData["genres"] = artist.Genres
	}

	if val := r.FormValue("bpm_min"); val != "" {
		artist.BPMRange.Min = utils.ParseIntOrZero(val)
	}
	if val := r.FormValue("bpm_max"); val != "" {
		artist.BPMRange.Max = utils.ParseIntOrZero(val)
	}
	updateData["bpmRange"] = artist.BPMRange

	if val := r.FormValue("is_verified"); val != "" {
		artist.IsVerified = val == "true"
		updateData["is_verified"] = artist.IsVerified
	}
	if val := r.FormValue("is_featured"); val != "" {
		artist.IsFeatured = val == "true"
		updateData["is_featured"] = artist.IsFeatured
	}

	if val := r.FormValue("socials"); val != "" {
		var socials map[string]string
		if err := json.Unmarshal([]byte(val), &socials); err == nil {
			artist.Socials = socials
			updateData["socials"] = socials
		}
	}

	if artist.Name != "" && (existing == nil || r.FormValue("name") != "") {
		artist.Slug = slugify.From(artist.Name)
		updateData["slug"] = artist.Slug
	}

	// The owner field links the artist record to its platform account,
	// which is what scopes the artist calendar view. Edits without an
	// explicit owner keep the existing linkage; only creation falls back
	// to the caller.
	if val := r.FormValue("owner"); val != "" {
		artist.CreatorID = val
		updateData["creatorid"] = val
	} else if existing != nil {
		artist.CreatorID = existing.CreatorID
	} else {
		artist.CreatorID = utils.GetUserIDFromRequest(r)
		if artist.CreatorID != "" {
			updateData["creatorid"] = artist.CreatorID
		}
	}

	return artist, updateData
}

func CreateArtist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	artist, _ := parseArtistForm(r, nil)
	if artist.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	artist.ArtistID = "a" + utils.GenerateRandomString(12)

	if _, err := db.ArtistsCollection.InsertOne(ctx, artist); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create artist")
		return
	}

	go mq.Emit(ctx, "artist-created", models.Index{
		EntityType: "artist", EntityId: artist.ArtistID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, artist)
}

func UpdateArtist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	idParam := ps.ByName("id")

	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	var existing models.Artist
	if err := db.ArtistsCollection.FindOne(ctx, bson.M{"artistid": idParam}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}

	_, updateData := parseArtistForm(r, &existing)
	if len(updateData) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "No changes detected"})
		return
	}

	_, err := db.ArtistsCollection.UpdateOne(ctx, bson.M{"artistid": idParam}, bson.M{"$set": updateData})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update artist")
		return
	}

	go mq.Emit(ctx, "artist-updated", models.Index{
		EntityType: "artist", EntityId: idParam, Method: "PUT",
	})

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Artist updated"})
}

// deleteArtistFn performs the external delete; a seam for tests.
var deleteArtistFn = func(r *http.Request, artistID string) error {
	_, err := db.ArtistsCollection.UpdateOne(r.Context(),
		bson.M{"artistid": artistID},
		bson.M{"$set": bson.M{"deleted": true}})
	return err
}

// DeleteArtistByID soft-deletes. The admin UI asks for confirmation; the
// call carries confirm=true only when the operator accepted.
func DeleteArtistByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	artistID := ps.ByName("id")
	if artistID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "artistID is required")
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		utils.RespondWithError(w, http.StatusBadRequest, "Deletion requires confirmation")
		return
	}

	if err := deleteArtistFn(r, artistID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete artist")
		return
	}

	go mq.Emit(r.Context(), "artist-deleted", models.Index{
		EntityType: "artist", EntityId: artistID, Method: "DELETE",
	})

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Artist deleted successfully"})
}
