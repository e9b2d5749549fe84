package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cadenza/db"
	"cadenza/models"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type toggleRequest struct {
	ArtistSlug string `json:"artistSlug"`
	UserID     string `json:"userId"`
}

// ToggleFavorite flips an artist in and out of the caller's favorites.
// The response always acknowledges; the write happens server-side against
// both the profile list and the favorites collection.
//
// POST /api/favorites/toggle
func ToggleFavorite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ArtistSlug == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "artistSlug is required")
		return
	}

	// The token wins over whatever userId the body claims.
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		userID = req.UserID
	}
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var profile models.UserProfile
	if err := db.ProfilesCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&profile); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	favorited := false
	for _, slug := range profile.FavoriteArtists {
		if slug == req.ArtistSlug {
			favorited = true
			break
		}
	}

	if favorited {
		err := removeFavorite(ctx, userID, req.ArtistSlug)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update favorites")
			return
		}
	} else {
		_, err := db.ProfilesCollection.UpdateOne(ctx,
			bson.M{"userid": userID},
			bson.M{"$addToSet": bson.M{"favorite_artists": req.ArtistSlug}},
		)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update favorites")
			return
		}
		_, _ = db.FavoritesCollection.InsertOne(ctx, models.Favorite{
			UserID:     userID,
			ArtistSlug: req.ArtistSlug,
			CreatedAt:  time.Now().Unix(),
		})

		var artist models.Artist
		if err := db.ArtistsCollection.FindOne(ctx, bson.M{"slug": req.ArtistSlug}).Decode(&artist); err == nil {
			Notify(ctx, models.Notification{
				UserID:     userID,
				Type:       models.NotifFollow,
				ArtistSlug: artist.Slug,
				ArtistName: artist.Name,
				Message:    "You are now following " + artist.Name,
				Link:       "/artists/" + artist.Slug,
			})
		}
	}

	InvalidateCachedProfile(userID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":   true,
		"favorited": !favorited,
	})
}

func removeFavorite(ctx context.Context, userID, slug string) error {
	if _, err := db.ProfilesCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$pull": bson.M{"favorite_artists": slug}},
	); err != nil {
		return err
	}
	_, err := db.FavoritesCollection.DeleteOne(ctx, bson.M{"userid": userID, "artist_slug": slug})
	return err
}

// RemoveFavorite unfollows a single artist by slug.
//
// DELETE /api/profile/favorites/:slug
func RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	slug := ps.ByName("slug")
	if err := removeFavorite(ctx, userID, slug); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	InvalidateCachedProfile(userID)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// GetFavorites returns the caller's favorite artists as full records, in
// the order they were favorited.
//
// GET /api/profile/favorites
func GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var profile models.UserProfile
	if err := db.ProfilesCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	if len(profile.FavoriteArtists) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.Artist{})
		return
	}

	artists, err := utils.FindAndDecode[models.Artist](ctx, db.ArtistsCollection,
		bson.M{"slug": bson.M{"$in": profile.FavoriteArtists}, "deleted": bson.M{"$ne": true}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	// Mongo returns $in matches in collection order; re-sort to the order
	// the user favorited them.
	bySlug := make(map[string]models.Artist, len(artists))
	for _, a := range artists {
		bySlug[a.Slug] = a
	}
	ordered := make([]models.Artist, 0, len(artists))
	for _, slug := range profile.FavoriteArtists {
		if a, ok := bySlug[slug]; ok {
			ordered = append(ordered, a)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, ordered)
}
