package profile

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"cadenza/db"
	"cadenza/models"
	"cadenza/rdx"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const profileCacheTTL = 10 * time.Minute

func cacheKey(userID string) string { return "profile:" + userID }

// GetMyProfile returns the authenticated user's profile, cached in redis.
func GetMyProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if cached, err := rdx.RdxGet(cacheKey(userID)); err == nil && cached != "" {
		var profile models.UserProfile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			utils.RespondWithJSON(w, http.StatusOK, profile)
			return
		}
	}

	var profile models.UserProfile
	if err := db.ProfilesCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&profile); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	if raw, err := json.Marshal(profile); err == nil {
		// TTL bounds staleness if an invalidation path is ever missed.
		if err := rdx.SetWithExpiry(cacheKey(userID), string(raw), profileCacheTTL); err != nil {
			log.Printf("Profile cache write failed: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// InvalidateCachedProfile drops the cached copy after any mutation.
func InvalidateCachedProfile(userID string) {
	if _, err := rdx.RdxDel(cacheKey(userID)); err != nil {
		log.Printf("Profile cache invalidation failed for %s: %v", userID, err)
	}
}

func respondWithProfile(w http.ResponseWriter, r *http.Request, userID string) {
	var profile models.UserProfile
	if err := db.ProfilesCollection.FindOne(r.Context(), bson.M{"userid": userID}).Decode(&profile); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}
