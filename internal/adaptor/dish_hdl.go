package adaptor

import (
	"net/http"

	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type DishHandler struct {
	service usecase.DishService
	responder
}

func NewDishHandler(service usecase.DishService, rs responder) *DishHandler {
	return &DishHandler{
		service:   service,
		responder: rs,
	}
}

// GetDishes handles GET /dishes?category= (public)
func (h *DishHandler) GetDishes(w http.ResponseWriter, r *http.Request) {
	category, err := categoryParam(r)
	if err != nil {
		h.respond(w, r, err, "get dishes")
		return
	}

	dishes, err := h.service.GetDishes(r.Context(), category)
	if err != nil {
		h.respond(w, r, err, "get dishes")
		return
	}

	utils.ResponseSuccess(w, dishes)
}

// GetDishByID handles GET /dishes/{id} (public)
func (h *DishHandler) GetDishByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, r, err, "get dish")
		return
	}

	dish, err := h.service.GetDishByID(r.Context(), id)
	if err != nil {
		h.respond(w, r, err, "get dish")
		return
	}

	utils.ResponseSuccess(w, dish)
}

// CreateDish handles POST /dishes
func (h *DishHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	var req request.DishRequest
	if !h.decode(w, r, &req) {
		return
	}

	dish, err := h.service.CreateDish(r.Context(), &req)
	if err != nil {
		h.respond(w, r, err, "create dish")
		return
	}

	utils.ResponseCreated(w, dish)
}

// UpdateDish handles PUT /dishes/{id}
func (h *DishHandler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, r, err, "update dish")
		return
	}

	var req request.DishUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	dish, err := h.service.UpdateDish(r.Context(), id, &req)
	if err != nil {
		h.respond(w, r, err, "update dish")
		return
	}

	utils.ResponseSuccess(w, dish)
}

// DeleteDish handles DELETE /dishes/{id}
func (h *DishHandler) DeleteDish(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, r, err, "delete dish")
		return
	}

	if err := h.service.DeleteDish(r.Context(), id); err != nil {
		h.respond(w, r, err, "delete dish")
		return
	}

	utils.ResponseNoContent(w)
}
