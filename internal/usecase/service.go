package usecase

import (
	"time"

	"restaurant-reservation/internal/data/cachekey"
	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/pkg/cache"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Restaurant  RestaurantService
	Dish        DishService
	Reservation ReservationService
}

// Caller identifies the authenticated user a request acts for
type Caller struct {
	UserID int64
	Role   entity.Role
}

func NewService(
	repo *repository.Repository,
	store cache.Store,
	keys cachekey.Builder,
	ttl time.Duration,
	tokens *utils.TokenIssuer,
	log *zap.Logger,
) *Service {
	policy := newCachePolicy(store, keys, ttl, log)

	return &Service{
		Auth:        NewAuthService(repo.User, policy, tokens, log),
		User:        NewUserService(repo, policy, log),
		Restaurant:  NewRestaurantService(repo, policy, log),
		Dish:        NewDishService(repo.Dish, policy, log),
		Reservation: NewReservationService(repo.Reservation, policy, log),
	}
}
