package adaptor

import (
	"restaurant-reservation/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Restaurant  *RestaurantHandler
	Dish        *DishHandler
	Reservation *ReservationHandler
}

// NewHandler builds every handler. With debug set, 500 responses carry the
// raw error text.
func NewHandler(service *usecase.Service, debug bool, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, newResponder(log, "auth", debug)),
		User:        NewUserHandler(service.User, newResponder(log, "user", debug)),
		Restaurant:  NewRestaurantHandler(service.Restaurant, newResponder(log, "restaurant", debug)),
		Dish:        NewDishHandler(service.Dish, newResponder(log, "dish", debug)),
		Reservation: NewReservationHandler(service.Reservation, newResponder(log, "reservation", debug)),
	}
}
