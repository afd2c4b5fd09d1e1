package handler

import (
	"net/http"

	"github.com/ashchan-dev/ashchan/internal/middleware"
	"github.com/ashchan-dev/ashchan/internal/utils"
)

type createPostRequest struct {
	Body string `validate:"required" json:"body"`
}

func (h *Handler) CreateThreadPost(w http.ResponseWriter, r *http.Request) {
	threadUuid, err := parseUuidParam(r, "thread")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body createPostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	actor := middleware.UserIdFromContext(r)
	post, err := h.post.Create(actor, threadUuid, body.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, post)
}

func (h *Handler) GetThreadPost(w http.ResponseWriter, r *http.Request) {
	postUuid, err := parseUuidParam(r, "post")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Get(postUuid)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, post)
}

func (h *Handler) DeleteThreadPost(w http.ResponseWriter, r *http.Request) {
	postUuid, err := parseUuidParam(r, "post")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	actor := middleware.UserIdFromContext(r)
	if err := h.post.Delete(actor, postUuid); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
