package adaptor

import (
	"net/http"

	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/pkg/utils"
)

type UserHandler struct {
	service usecase.UserService
	responder
}

func NewUserHandler(service usecase.UserService, rs responder) *UserHandler {
	return &UserHandler{
		service:   service,
		responder: rs,
	}
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.respond(w, r, err, "get profile")
		return
	}

	user, err := h.service.GetProfile(r.Context(), who.UserID)
	if err != nil {
		h.respond(w, r, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, user)
}

// GetMyReservations handles GET /users/me/reservations
func (h *UserHandler) GetMyReservations(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.respond(w, r, err, "get my reservations")
		return
	}

	reservations, err := h.service.GetReservations(r.Context(), who.UserID)
	if err != nil {
		h.respond(w, r, err, "get my reservations")
		return
	}

	utils.ResponseSuccess(w, reservations)
}

// UpdateMe handles PUT /users/me/update
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.respond(w, r, err, "update profile")
		return
	}

	var req request.UserUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), who.UserID, &req)
	if err != nil {
		h.respond(w, r, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, user)
}

// DeleteMe handles DELETE /users/me/delete
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.respond(w, r, err, "delete profile")
		return
	}

	if err := h.service.DeleteProfile(r.Context(), who.UserID); err != nil {
		h.respond(w, r, err, "delete profile")
		return
	}

	utils.ResponseNoContent(w)
}
