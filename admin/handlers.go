package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"

	"cadenza/db"
	"cadenza/models"
	"cadenza/profile"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Login exchanges operator credentials for a one-hour bearer token.
//
// POST /api/admin/login
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := Auth.Authenticate(creds.Username, creds.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": token})
}

// Session reports the principal behind a token, for the panel to restore
// its login state.
//
// GET /api/admin/session
func Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token := r.Header.Get("Authorization")
	if len(token) > 7 && token[:7] == "Bearer " {
		token = token[7:]
	}

	principal, err := Auth.Validate(token)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, principal)
}

// searchFilter builds a case-insensitive substring match over the given
// fields.
func searchFilter(q string, fields ...string) bson.M {
	if q == "" {
		return bson.M{}
	}
	pattern := regexp.QuoteMeta(q)
	ors := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		ors = append(ors, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
	}
	return bson.M{"$or": ors}
}

// GetUsers lists profiles for the users panel. Search matches name, email
// and location; role is a categorical filter.
//
// GET /api/admin/users
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	filter := searchFilter(r.URL.Query().Get("search"),
		"full_name", "email", "artist_profile.location", "booker_profile.location")
	if role := r.URL.Query().Get("role"); role != "" && role != "all" {
		filter["role"] = role
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	findOpts := options.Find().SetSort(bson.M{"userid": 1}).SetSkip(skip).SetLimit(limit)

	users, err := utils.FindAndDecode[models.UserProfile](ctx, db.ProfilesCollection, filter, findOpts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	total, err := db.ProfilesCollection.CountDocuments(ctx, filter)
	if err != nil {
		total = int64(len(users))
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"users": users, "total": total})
}

// UpdateUser lets an operator edit a profile's flat fields.
//
// PUT /api/admin/users/:id
func UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := ps.ByName("id")

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{}
	for _, field := range []string{"full_name", "email", "role", "is_verified", "theme"} {
		if v, ok := body[field]; ok {
			update[field] = v
		}
	}
	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No editable fields in request")
		return
	}

	res, err := db.ProfilesCollection.UpdateOne(ctx, bson.M{"userid": userID}, bson.M{"$set": update})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	invalidateProfileFn(userID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// Operator edits and deletes must drop the cached self-view copy, or
// GET /api/profile keeps serving the pre-edit record.
var invalidateProfileFn = profile.InvalidateCachedProfile

var deleteUserFn = func(ctx context.Context, userID string) error {
	if _, err := db.ProfilesCollection.DeleteOne(ctx, bson.M{"userid": userID}); err != nil {
		return err
	}
	_, err := db.UserCollection.DeleteOne(ctx, bson.M{"userid": userID})
	return err
}

// DeleteUser removes an account. The delete only fires once the caller has
// confirmed; the first request without confirm=true is refused.
//
// DELETE /api/admin/users/:id?confirm=true
func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if r.URL.Query().Get("confirm") != "true" {
		utils.RespondWithError(w, http.StatusBadRequest, "Deletion requires confirmation")
		return
	}

	userID := ps.ByName("id")
	if err := deleteUserFn(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	invalidateProfileFn(userID)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// Dashboard returns the stat tiles for the admin landing page.
//
// GET /api/admin/dashboard
func Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	counts := utils.M{}
	for name, tile := range map[string]struct {
		coll   *mongo.Collection
		filter bson.M
	}{
		"users":           {db.ProfilesCollection, bson.M{}},
		"artists":         {db.ArtistsCollection, bson.M{"deleted": bson.M{"$ne": true}}},
		"festivals":       {db.FestivalsCollection, bson.M{}},
		"bookings":        {db.BookingsCollection, bson.M{}},
		"pendingBookings": {db.BookingsCollection, bson.M{"status": models.BookingPending}},
	} {
		n, err := tile.coll.CountDocuments(ctx, tile.filter)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
			return
		}
		counts[name] = n
	}

	utils.RespondWithJSON(w, http.StatusOK, counts)
}
