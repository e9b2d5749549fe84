package search

import (
	"net/http"
	"strconv"

	"cadenza/utils"

	"github.com/julienschmidt/httprouter"
)

// QuickSearch backs the admin back-office search box.
func QuickSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query().Get("q")
	if q == "" {
		utils.RespondWithJSON(w, http.StatusOK, []Entry{})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 50 {
		limit = 20
	}

	results, err := Query(r.Context(), q, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	if results == nil {
		results = []Entry{}
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}
