package wire

import (
	"net/http"

	"restaurant-reservation/internal/access"
	"restaurant-reservation/internal/adaptor"
	"restaurant-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	authenticate func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/reservations", func(r chi.Router) {
		r.Use(authenticate)

		r.With(middleware.RequirePermission(access.ReservationCreate, log)).
			Post("/", reservationHandler.CreateReservation)
		// ownership is checked by the service
		r.With(middleware.RequirePermission(access.ReservationRead, log)).
			Get("/{id}", reservationHandler.GetReservationByID)

		// ==================== STAFF ROUTES ====================
		r.With(middleware.RequirePermission(access.ReservationUpdate, log)).
			Put("/{id}", reservationHandler.UpdateReservation)
		r.With(middleware.RequirePermission(access.ReservationDelete, log)).
			Delete("/{id}", reservationHandler.DeleteReservation)
		r.With(middleware.RequirePermission(access.ReservationListByRestaurant, log)).
			Get("/restaurant/{restaurant_id}", reservationHandler.GetRestaurantReservations)
	})
}
