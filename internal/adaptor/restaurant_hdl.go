package adaptor

import (
	"net/http"

	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type RestaurantHandler struct {
	service usecase.RestaurantService
	responder
}

func NewRestaurantHandler(service usecase.RestaurantService, rs responder) *RestaurantHandler {
	return &RestaurantHandler{
		service:   service,
		responder: rs,
	}
}

// GetRestaurants handles GET /restaurants (public)
func (h *RestaurantHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.GetRestaurants(r.Context())
	if err != nil {
		h.respond(w, r, err, "get restaurants")
		return
	}

	utils.ResponseSuccess(w, restaurants)
}

// GetRestaurantByID handles GET /restaurants/{id} (public)
func (h *RestaurantHandler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, r, err, "get restaurant")
		return
	}

	restaurant, err := h.service.GetRestaurantByID(r.Context(), id)
	if err != nil {
		h.respond(w, r, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, restaurant)
}

// GetMenu handles GET /restaurants/{id}/menu?category= (public)
func (h *RestaurantHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, r, err, "get menu")
		return
	}

	category, err := categoryParam(r)
	if err != nil {
		h.respond(w, r, err, "get menu")
		return
	}

	menu, err := h.service.GetMenu(r.Context(), id, category)
	if err != nil {
		h.respond(w, r, err, "get menu")
		return
	}

	utils.ResponseSuccess(w, menu)
}

// CreateRestaurant handles POST /restaurants
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req request.RestaurantRequest
	if !h.decode(w, r, &req) {
		return
	}

	restaurant, err := h.service.CreateRestaurant(r.Context(), &req)
	if err != nil {
		h.respond(w, r, err, "create restaurant")
		return
	}

	utils.ResponseCreated(w, restaurant)
}

// UpdateRestaurant handles PUT /restaurants/{id}
func (h *RestaurantHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, r, err, "update restaurant")
		return
	}

	var req request.RestaurantUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	restaurant, err := h.service.UpdateRestaurant(r.Context(), id, &req)
	if err != nil {
		h.respond(w, r, err, "update restaurant")
		return
	}

	utils.ResponseSuccess(w, restaurant)
}

// DeleteRestaurant handles DELETE /restaurants/{id}
func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, r, err, "delete restaurant")
		return
	}

	if err := h.service.DeleteRestaurant(r.Context(), id); err != nil {
		h.respond(w, r, err, "delete restaurant")
		return
	}

	utils.ResponseNoContent(w)
}
