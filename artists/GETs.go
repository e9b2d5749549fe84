package artists

import (
	"net/http"
	"strconv"

	"cadenza/db"
	"cadenza/directory"
	"cadenza/models"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// directoryArtist adapts models.Artist to the filter engine.
type directoryArtist struct{ models.Artist }

func (a directoryArtist) SearchText() []string {
	return append([]string{a.Name, a.Location, a.Country}, a.Genres...)
}

func (a directoryArtist) Facet(dim string) string {
	switch dim {
	case "type":
		return a.Type
	case "country":
		return a.Country
	case "availability":
		return a.Availability
	default:
		return ""
	}
}

var artistDims = []string{"type", "country", "availability"}

// GetArtists lists the artist directory with filters, facets and the
// load-more window.
//
// GET /api/artists?query=&type=&country=&availability=&loads=0
func GetArtists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	q := r.URL.Query()

	// Insertion order is the directory's display order; the filter engine
	// preserves it.
	all, err := utils.FindAndDecode[models.Artist](ctx, db.ArtistsCollection,
		bson.M{"deleted": bson.M{"$ne": true}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch artists")
		return
	}

	entities := make([]directoryArtist, len(all))
	for i, a := range all {
		entities[i] = directoryArtist{a}
	}

	criteria := directory.Criteria{
		Query: q.Get("query"),
		Fields: map[string]string{
			"type":         q.Get("type"),
			"country":      q.Get("country"),
			"availability": q.Get("availability"),
		},
	}

	filtered := directory.Filter(entities, criteria)

	facets := map[string][]string{}
	for _, dim := range artistDims {
		facets[dim] = directory.Facets(entities, criteria, dim)
	}

	loads, _ := strconv.Atoi(q.Get("loads"))
	visible := directory.Visible(len(filtered), loads)

	items := make([]models.Artist, 0, visible)
	for _, e := range directory.Window(filtered, visible) {
		items = append(items, e.Artist)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"items":   items,
		"total":   len(filtered),
		"visible": visible,
		"facets":  facets,
	})
}

// GetArtistBySlug serves the artist detail page.
func GetArtistBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	slug := ps.ByName("slug")

	var artist models.Artist
	err := db.ArtistsCollection.FindOne(ctx, bson.M{"slug": slug, "deleted": bson.M{"$ne": true}}).Decode(&artist)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Artist not found")
		return
	}

	// Festivals referencing this artist, weak references resolved best-effort.
	festivals, err := utils.FindAndDecode[models.Festival](ctx, db.FestivalsCollection,
		bson.M{"artistSlugs": slug})
	if err != nil {
		festivals = []models.Festival{}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"artist":    artist,
		"festivals": festivals,
	})
}

// GetFeaturedArtists powers the landing page carousel.
func GetFeaturedArtists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	artists, err := utils.FindAndDecode[models.Artist](r.Context(), db.ArtistsCollection,
		bson.M{"is_featured": true, "deleted": bson.M{"$ne": true}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch artists")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, artists)
}
