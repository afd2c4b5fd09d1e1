package handler

import (
	"net/http"

	"github.com/ashchan-dev/ashchan/internal/utils"
)

const defaultTopK = 20

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	k := defaultTopK
	if val, err := optionalIntQuery(r, "k"); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	} else if val != nil {
		k = *val
	}

	searchThreads, err := boolQuery(r, "threads", true)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	searchPosts, err := boolQuery(r, "posts", true)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	hits, err := h.search.TopK(r.URL.Query().Get("q"), k, searchThreads, searchPosts)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, hits)
}
