package wire

import (
	"net/http"

	"restaurant-reservation/internal/access"
	"restaurant-reservation/internal/adaptor"
	"restaurant-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRestaurant(
	r chi.Router,
	restaurantHandler *adaptor.RestaurantHandler,
	authenticate func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/restaurants", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", restaurantHandler.GetRestaurants)
		r.Get("/{id}", restaurantHandler.GetRestaurantByID)
		r.Get("/{id}/menu", restaurantHandler.GetMenu)

		// ==================== ADMIN ROUTES ====================
		r.With(authenticate, middleware.RequirePermission(access.RestaurantCreate, log)).
			Post("/", restaurantHandler.CreateRestaurant)
		r.With(authenticate, middleware.RequirePermission(access.RestaurantUpdate, log)).
			Put("/{id}", restaurantHandler.UpdateRestaurant)
		r.With(authenticate, middleware.RequirePermission(access.RestaurantDelete, log)).
			Delete("/{id}", restaurantHandler.DeleteRestaurant)
	})
}
