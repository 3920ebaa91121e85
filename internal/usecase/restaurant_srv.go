package usecase

import (
	"context"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/internal/dto/request"
	"restaurant-reservation/internal/dto/response"
	"restaurant-reservation/pkg/utils"

	"go.uber.org/zap"
)

type RestaurantService interface {
	GetRestaurants(ctx context.Context) ([]response.RestaurantResponse, error)
	GetRestaurantByID(ctx context.Context, restaurantID int64) (*response.RestaurantResponse, error)
	GetMenu(ctx context.Context, restaurantID int64, category *entity.DishCategory) ([]response.DishResponse, error)

	CreateRestaurant(ctx context.Context, req *request.RestaurantRequest) (*response.RestaurantResponse, error)
	UpdateRestaurant(ctx context.Context, restaurantID int64, req *request.RestaurantUpdateRequest) (*response.RestaurantResponse, error)
	DeleteRestaurant(ctx context.Context, restaurantID int64) error
}

type restaurantService struct {
	repo  *repository.Repository // restaurant plus the dish and reservation repos it cascades to
	cache *cachePolicy
	log   *zap.Logger
}

func NewRestaurantService(repo *repository.Repository, cache *cachePolicy, log *zap.Logger) RestaurantService {
	return &restaurantService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "restaurant")),
	}
}

func (s *restaurantService) GetRestaurants(ctx context.Context) ([]response.RestaurantResponse, error) {
	return fetchMany(ctx, s.cache, s.cache.keys.Restaurants(), func(ctx context.Context) ([]response.RestaurantResponse, error) {
		restaurants, err := s.repo.Restaurant.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return response.RestaurantsToResponse(restaurants), nil
	}, "Restaurants not found")
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, restaurantID int64) (*response.RestaurantResponse, error) {
	return fetchOne(ctx, s.cache, s.cache.keys.Restaurant(restaurantID), func(ctx context.Context) (*response.RestaurantResponse, error) {
		restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantID)
		if err != nil || restaurant == nil {
			return nil, err
		}
		resp := response.RestaurantToResponse(restaurant)
		return &resp, nil
	}, "Restaurant not found")
}

// GetMenu lists the dishes of one restaurant in insertion order
func (s *restaurantService) GetMenu(ctx context.Context, restaurantID int64, category *entity.DishCategory) ([]response.DishResponse, error) {
	return fetchMany(ctx, s.cache, s.cache.keys.RestaurantMenu(restaurantID, category), func(ctx context.Context) ([]response.DishResponse, error) {
		dishes, err := s.repo.Dish.FindByRestaurant(ctx, restaurantID, category)
		if err != nil {
			return nil, err
		}
		return response.DishesToResponse(dishes), nil
	}, "Menu not found")
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, req *request.RestaurantRequest) (*response.RestaurantResponse, error) {
	restaurant := &entity.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	}

	if err := s.repo.Restaurant.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	keys := []string{
		s.cache.keys.Restaurants(),
		s.cache.keys.Restaurant(restaurant.ID),
		s.cache.keys.Reservations(restaurant.ID),
	}
	keys = append(keys, s.cache.keys.MenuViews(restaurant.ID)...)
	if err := s.cache.invalidate(ctx, keys...); err != nil {
		return nil, err
	}

	s.log.Info("Restaurant created",
		zap.Int64("restaurant_id", restaurant.ID),
		zap.String("name", restaurant.Name),
	)

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, restaurantID int64, req *request.RestaurantUpdateRequest) (*response.RestaurantResponse, error) {
	restaurant, err := s.repo.Restaurant.Update(ctx, restaurantID, entity.RestaurantPatch{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, utils.NotFound("Restaurant not found")
	}

	if err := s.cache.invalidate(ctx,
		s.cache.keys.Restaurant(restaurantID),
		s.cache.keys.Restaurants(),
	); err != nil {
		return nil, err
	}

	s.log.Info("Restaurant updated", zap.Int64("restaurant_id", restaurantID))

	resp := response.RestaurantToResponse(restaurant)
	return &resp, nil
}

// DeleteRestaurant removes the restaurant with its dishes and reservations.
// The children are listed first so their cache keys can be dropped too.
func (s *restaurantService) DeleteRestaurant(ctx context.Context, restaurantID int64) error {
	dishes, err := s.repo.Dish.FindByRestaurant(ctx, restaurantID, nil)
	if err != nil {
		return err
	}
	reservations, err := s.repo.Reservation.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Restaurant.Delete(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Restaurant not found")
	}

	if err := s.cache.invalidate(ctx, s.cascadeKeys(restaurantID, dishes, reservations)...); err != nil {
		return err
	}

	s.log.Info("Restaurant deleted",
		zap.Int64("restaurant_id", restaurantID),
		zap.Int("dishes", len(dishes)),
		zap.Int("reservations", len(reservations)),
	)
	return nil
}

func (s *restaurantService) cascadeKeys(restaurantID int64, dishes []*entity.Dish, reservations []*entity.Reservation) []string {
	keys := []string{
		s.cache.keys.Restaurant(restaurantID),
		s.cache.keys.Restaurants(),
		s.cache.keys.Reservations(restaurantID),
		s.cache.keys.Dishes(nil),
	}
	keys = append(keys, s.cache.keys.MenuViews(restaurantID)...)

	for _, c := range entity.DishCategories {
		category := c
		keys = append(keys, s.cache.keys.Dishes(&category))
	}
	for _, dish := range dishes {
		keys = append(keys, s.cache.keys.Dish(dish.ID))
	}
	for _, reservation := range reservations {
		keys = append(keys,
			s.cache.keys.Reservation(reservation.ID),
			s.cache.keys.UserReservations(reservation.UserID),
		)
	}
	return keys
}
