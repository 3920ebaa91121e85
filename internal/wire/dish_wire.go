package wire

import (
	"net/http"

	"restaurant-reservation/internal/access"
	"restaurant-reservation/internal/adaptor"
	"restaurant-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDish(
	r chi.Router,
	dishHandler *adaptor.DishHandler,
	authenticate func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/dishes", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", dishHandler.GetDishes)
		r.Get("/{id}", dishHandler.GetDishByID)

		// ==================== STAFF ROUTES ====================
		// Admin and staff manage the menu
		r.With(authenticate, middleware.RequirePermission(access.DishCreate, log)).
			Post("/", dishHandler.CreateDish)
		r.With(authenticate, middleware.RequirePermission(access.DishUpdate, log)).
			Put("/{id}", dishHandler.UpdateDish)
		r.With(authenticate, middleware.RequirePermission(access.DishDelete, log)).
			Delete("/{id}", dishHandler.DeleteDish)
	})
}
