package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/middleware"
	"github.com/ashchan-dev/ashchan/internal/utils"
)

type createThreadRequest struct {
	Title         string `validate:"required" json:"title"`
	ParentBoardId string `validate:"required" json:"parent_board_id"`
	FirstPostBody string `validate:"required" json:"first_post_body"`
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var body createThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	boardUuid, err := uuid.Parse(body.ParentBoardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, errors.Validation("invalid parent_board_id: must be a uuid"))
		return
	}

	actor := middleware.UserIdFromContext(r)
	thread, err := h.thread.Create(actor, body.Title, boardUuid, body.FirstPostBody)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, thread)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadUuid, err := parseUuidParam(r, "thread")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Get(threadUuid)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, thread)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	threadUuid, err := parseUuidParam(r, "thread")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	actor := middleware.UserIdFromContext(r)
	if err := h.thread.Delete(actor, threadUuid); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetThreadPosts(w http.ResponseWriter, r *http.Request) {
	threadUuid, err := parseUuidParam(r, "thread")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
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

	posts, err := h.thread.Posts(threadUuid, start, end)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, posts)
}
