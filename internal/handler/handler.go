package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ashchan-dev/ashchan/internal/logger"
	"github.com/ashchan-dev/ashchan/internal/service"
)

type Handler struct {
	auth   service.AuthService
	board  service.BoardService
	thread service.ThreadService
	post   service.ThreadPostService
	search service.SearchService
	logs   service.LogService
	health Pinger
}

func New(auth service.AuthService, board service.BoardService, thread service.ThreadService, post service.ThreadPostService, search service.SearchService, logs service.LogService, health Pinger) *Handler {
	return &Handler{auth, board, thread, post, search, logs, health}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("response encoding failed", "error", err)
	}
}
