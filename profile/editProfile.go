package profile

import (
	"net/http"
	"slices"

	"cadenza/db"
	"cadenza/models"
	"cadenza/mq"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// parseRoleSection reads the role-specific sub-form into the profile's
// tagged payload. Exactly one payload field survives per role; switching
// roles clears the others.
func parseRoleSection(r *http.Request, role string) bson.M {
	update := bson.M{
		"artist_profile":   nil,
		"booker_profile":   nil,
		"industry_profile": nil,
		"guest_profile":    nil,
	}

	switch {
	case slices.Contains(models.ArtistRoles, role):
		update["artist_profile"] = models.ArtistProfile{
			Alias:           r.FormValue("alias"),
			PerformanceType: r.FormValue("performance_type"),
			Location:        r.FormValue("location"),
			Genres:          utils.SplitCSV(r.FormValue("genres")),
			BPMMin:          utils.ParseIntOrZero(r.FormValue("bpm_min")),
			BPMMax:          utils.ParseIntOrZero(r.FormValue("bpm_max")),
			Socials: map[string]string{
				"soundcloud": r.FormValue("soundcloud"),
				"spotify":    r.FormValue("spotify"),
				"bandcamp":   r.FormValue("bandcamp"),
				"mixcloud":   r.FormValue("mixcloud"),
			},
		}
	case slices.Contains(models.BookerRoles, role):
		update["booker_profile"] = models.BookerProfile{
			Organization: r.FormValue("organization"),
			VenueType:    r.FormValue("venue_type"),
			Location:     r.FormValue("location"),
			Capacity:     utils.ParseIntOrZero(r.FormValue("capacity")),
			Website:      r.FormValue("website"),
		}
	case slices.Contains(models.IndustryRoles, role):
		industry := models.IndustryProfile{
			Organization: r.FormValue("organization"),
			Website:      r.FormValue("website"),
			ContactEmail: r.FormValue("contact_email"),
		}
		if role == "label" {
			industry.DemoSubmitURL = r.FormValue("demo_submit_url")
		}
		update["industry_profile"] = industry
	default:
		update["guest_profile"] = models.GuestProfile{
			PreferredGenres: utils.SplitCSV(r.FormValue("preferred_genres")),
		}
	}

	return update
}

// EditProfile merges a role-conditional form submission into the caller's
// profile.
//
// PUT /api/profile
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	var existing models.UserProfile
	if err := db.ProfilesCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	role := existing.Role
	if v := r.FormValue("role"); v != "" {
		role = v
	}

	update := parseRoleSection(r, role)
	update["role"] = role

	if v := r.FormValue("full_name"); v != "" {
		update["full_name"] = v
	}
	if v := r.FormValue("theme"); v != "" {
		update["theme"] = v
	}

	// Generic socials block, shared by every role.
	socials := existing.Socials
	if socials == nil {
		socials = map[string]string{}
	}
	for _, key := range []string{"instagram", "twitter", "linkedin", "website"} {
		if v := r.FormValue("social_" + key); v != "" {
			socials[key] = v
		}
	}
	update["socials"] = socials

	if _, err := db.ProfilesCollection.UpdateOne(ctx, bson.M{"userid": userID}, bson.M{"$set": update}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	InvalidateCachedProfile(userID)

	go mq.Emit(ctx, "profile-updated", models.Index{
		EntityType: "profile", EntityId: userID, Method: "PUT",
	})

	respondWithProfile(w, r, userID)
}
