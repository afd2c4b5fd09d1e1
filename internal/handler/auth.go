package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/middleware"
	"github.com/ashchan-dev/ashchan/internal/utils"
)

type registerRequest struct {
	Password string `validate:"required" json:"password"`
}

type credentials struct {
	UserId   string `validate:"required" json:"user_id"`
	Password string `validate:"required" json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Register(body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(creds.UserId, creds.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, map[string]string{"token": token})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.User(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, user)
}

type changeTypeRequest struct {
	Type int `validate:"required" json:"type"`
}

func (h *Handler) ChangeUserType(w http.ResponseWriter, r *http.Request) {
	var body changeTypeRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	newType, err := domain.UserTypeFromInt(body.Type)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, errors.Validation(err.Error()))
		return
	}

	actor := middleware.UserIdFromContext(r)
	if err := h.auth.ChangeUserType(actor, chi.URLParam(r, "id"), newType); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type changeStatusRequest struct {
	Status int `validate:"required" json:"status"`
}

func (h *Handler) ChangeUserStatus(w http.ResponseWriter, r *http.Request) {
	var body changeStatusRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	newStatus, err := domain.UserStatusFromInt(body.Status)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, errors.Validation(err.Error()))
		return
	}

	actor := middleware.UserIdFromContext(r)
	if err := h.auth.ChangeUserStatus(actor, chi.URLParam(r, "id"), newStatus); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
