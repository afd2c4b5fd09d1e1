package handler

import (
	"net/http"

	"github.com/ashchan-dev/ashchan/internal/utils"
)

func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	start, err := optionalIntQuery(r, "start")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	end, err := optionalIntQuery(r, "end")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	logs, err := h.logs.Range(start, end)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, logs)
}
