package festivals

import (
	"net/http"
	"strconv"

	"cadenza/db"
	"cadenza/directory"
	"cadenza/models"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

type directoryFestival struct{ models.Festival }

func (f directoryFestival) SearchText() []string {
	return []string{f.Name, f.Location, f.Country}
}

func (f directoryFestival) Facet(dim string) string {
	switch dim {
	case "type":
		return f.Type
	case "country":
		return f.Country
	default:
		return ""
	}
}

var festivalDims = []string{"type", "country"}

// GetFestivals lists the festival directory.
//
// GET /api/festivals?query=&type=&country=&loads=0
func GetFestivals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	q := r.URL.Query()

	all, err := utils.FindAndDecode[models.Festival](ctx, db.FestivalsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch festivals")
		return
	}

	entities := make([]directoryFestival, len(all))
	for i, f := range all {
		entities[i] = directoryFestival{f}
	}

	criteria := directory.Criteria{
		Query: q.Get("query"),
		Fields: map[string]string{
			"type":    q.Get("type"),
			"country": q.Get("country"),
		},
	}

	filtered := directory.Filter(entities, criteria)

	facets := map[string][]string{}
	for _, dim := range festivalDims {
		facets[dim] = directory.Facets(entities, criteria, dim)
	}

	loads, _ := strconv.Atoi(q.Get("loads"))
	visible := directory.Visible(len(filtered), loads)

	items := make([]models.Festival, 0, visible)
	for _, e := range directory.Window(filtered, visible) {
		items = append(items, e.Festival)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"items":   items,
		"total":   len(filtered),
		"visible": visible,
		"facets":  facets,
	})
}

// GetFestivalBySlug serves the festival detail page with its lineup
// resolved through the weak artist-slug references.
func GetFestivalBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var festival models.Festival
	err := db.FestivalsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&festival)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Festival not found")
		return
	}

	lineup := []models.Artist{}
	if len(festival.ArtistSlugs) > 0 {
		lineup, err = utils.FindAndDecode[models.Artist](ctx, db.ArtistsCollection,
			bson.M{"slug": bson.M{"$in": festival.ArtistSlugs}, "deleted": bson.M{"$ne": true}})
		if err != nil {
			lineup = []models.Artist{}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"festival": festival,
		"lineup":   lineup,
	})
}

// GetFestivalsCount backs the admin dashboard stat tile.
func GetFestivalsCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count, err := db.FestivalsCollection.CountDocuments(r.Context(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch festival count")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]int64{"count": count})
}

// ShareQR renders a QR code pointing at the festival detail page.
func ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	err := db.FestivalsCollection.FindOne(r.Context(), bson.M{"slug": slug}).Err()
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Festival not found")
		return
	}

	base := r.URL.Query().Get("base")
	if base == "" {
		base = "https://cadenza.live"
	}
	png, err := qrcode.Encode(base+"/festivals/"+slug, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
