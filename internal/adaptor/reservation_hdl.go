package adaptor

import (
	"net/http"

	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type ReservationHandler struct {
	service usecase.ReservationService
	responder
}

func NewReservationHandler(service usecase.ReservationService, rs responder) *ReservationHandler {
	return &ReservationHandler{
		service:   service,
		responder: rs,
	}
}

// CreateReservation handles POST /reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.respond(w, r, err, "create reservation")
		return
	}

	var req request.ReservationRequest
	if !h.decode(w, r, &req) {
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), who, &req)
	if err != nil {
		h.respond(w, r, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, reservation)
}

// GetReservationByID handles GET /reservations/{id}
func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	who, err := caller(r)
	if err != nil {
		h.respond(w, r, err, "get reservation")
		return
	}

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, r, err, "get reservation")
		return
	}

	reservation, err := h.service.GetReservationByID(r.Context(), who, id)
	if err != nil {
		h.respond(w, r, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, reservation)
}

// GetRestaurantReservations handles GET /reservations/restaurant/{restaurant_id}
func (h *ReservationHandler) GetRestaurantReservations(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := utils.ParseID(chi.URLParam(r, "restaurant_id"))
	if err != nil {
		h.respond(w, r, err, "get restaurant reservations")
		return
	}

	reservations, err := h.service.GetRestaurantReservations(r.Context(), restaurantID)
	if err != nil {
		h.respond(w, r, err, "get restaurant reservations")
		return
	}

	utils.ResponseSuccess(w, reservations)
}

// UpdateReservation handles PUT /reservations/{id}
func (h *ReservationHandler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, r, err, "update reservation")
		return
	}

	var req request.ReservationUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	reservation, err := h.service.UpdateReservation(r.Context(), id, &req)
	if err != nil {
		h.respond(w, r, err, "update reservation")
		return
	}

	utils.ResponseSuccess(w, reservation)
}

// DeleteReservation handles DELETE /reservations/{id}
func (h *ReservationHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, r, err, "delete reservation")
		return
	}

	if err := h.service.DeleteReservation(r.Context(), id); err != nil {
		h.respond(w, r, err, "delete reservation")
		return
	}

	utils.ResponseNoContent(w)
}
