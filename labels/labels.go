package labels

import (
	"net/http"
	"strconv"

	"cadenza/db"
	"cadenza/directory"
	"cadenza/models"
	"cadenza/mq"
	"cadenza/slugify"
	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type directoryLabel struct{ models.Label }

func (l directoryLabel) SearchText() []string {
	return append([]string{l.Name, l.Location, l.Country}, l.Genres...)
}

func (l directoryLabel) Facet(dim string) string {
	if dim == "country" {
		return l.Country
	}
	return ""
}

// GetLabels lists the label directory.
//
// GET /api/labels?query=&country=&loads=0
func GetLabels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	q := r.URL.Query()

	all, err := utils.FindAndDecode[models.Label](ctx, db.LabelsCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch labels")
		return
	}

	entities := make([]directoryLabel, len(all))
	for i, l := range all {
		entities[i] = directoryLabel{l}
	}

	criteria := directory.Criteria{
		Query:  q.Get("query"),
		Fields: map[string]string{"country": q.Get("country")},
	}

	filtered := directory.Filter(entities, criteria)
	loads, _ := strconv.Atoi(q.Get("loads"))
	visible := directory.Visible(len(filtered), loads)

	items := make([]models.Label, 0, visible)
	for _, e := range directory.Window(filtered, visible) {
		items = append(items, e.Label)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"items":   items,
		"total":   len(filtered),
		"visible": visible,
		"facets": map[string][]string{
			"country": directory.Facets(entities, criteria, "country"),
		},
	})
}

func GetLabelBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var label models.Label
	err := db.LabelsCollection.FindOne(r.Context(), bson.M{"slug": ps.ByName("slug")}).Decode(&label)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Label not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, label)
}

// CreateLabel exists for the admin back-office; the public surface is
// read-only.
func CreateLabel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	label := models.Label{
		LabelID:     "l" + utils.GenerateRandomString(12),
		Name:        r.FormValue("name"),
		Location:    r.FormValue("location"),
		Country:     r.FormValue("country"),
		Genres:      utils.SplitTags(r.FormValue("genres")),
		Image:       r.FormValue("image"),
		IsVerified:  r.FormValue("is_verified") == "true",
		ArtistCount: utils.ParseIntOrZero(r.FormValue("artist_count")),
		Founded:     utils.ParseIntOrZero(r.FormValue("founded")),
	}
	if label.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}
	label.Slug = slugify.From(label.Name)

	if _, err := db.LabelsCollection.InsertOne(ctx, label); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create label")
		return
	}

	go mq.Emit(ctx, "label-created", models.Index{
		EntityType: "label", EntityId: label.LabelID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, label)
}
