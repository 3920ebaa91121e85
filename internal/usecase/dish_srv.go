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

type DishService interface {
	GetDishes(ctx context.Context, category *entity.DishCategory) ([]response.DishResponse, error)
	GetDishByID(ctx context.Context, dishID int64) (*response.DishResponse, error)

	CreateDish(ctx context.Context, req *request.DishRequest) (*response.DishResponse, error)
	UpdateDish(ctx context.Context, dishID int64, req *request.DishUpdateRequest) (*response.DishResponse, error)
	DeleteDish(ctx context.Context, dishID int64) error
}

type dishService struct {
	dishRepo repository.DishRepository
	cache    *cachePolicy
	log      *zap.Logger
}

func NewDishService(dishRepo repository.DishRepository, cache *cachePolicy, log *zap.Logger) DishService {
	return &dishService{
		dishRepo: dishRepo,
		cache:    cache,
		log:      log.With(zap.String("service", "dish")),
	}
}

func (s *dishService) GetDishes(ctx context.Context, category *entity.DishCategory) ([]response.DishResponse, error) {
	return fetchMany(ctx, s.cache, s.cache.keys.Dishes(category), func(ctx context.Context) ([]response.DishResponse, error) {
		dishes, err := s.dishRepo.FindAll(ctx, category)
		if err != nil {
			return nil, err
		}
		return response.DishesToResponse(dishes), nil
	}, "Dishes not found")
}

func (s *dishService) GetDishByID(ctx context.Context, dishID int64) (*response.DishResponse, error) {
	return fetchOne(ctx, s.cache, s.cache.keys.Dish(dishID), func(ctx context.Context) (*response.DishResponse, error) {
		dish, err := s.dishRepo.FindByID(ctx, dishID)
		if err != nil || dish == nil {
			return nil, err
		}
		resp := response.DishToResponse(dish)
		return &resp, nil
	}, "Dish not found")
}

func (s *dishService) CreateDish(ctx context.Context, req *request.DishRequest) (*response.DishResponse, error) {
	dish := &entity.Dish{
		RestaurantID: req.RestaurantID,
		Category:     req.Category,
		DishName:     req.DishName,
		Description:  req.Description,
		Price:        req.Price,
	}

	if err := s.dishRepo.Create(ctx, dish); err != nil {
		return nil, err
	}

	if err := s.cache.invalidate(ctx, s.cache.keys.DishViews(dish)...); err != nil {
		return nil, err
	}

	s.log.Info("Dish created",
		zap.Int64("dish_id", dish.ID),
		zap.Int64("restaurant_id", dish.RestaurantID),
		zap.String("category", string(dish.Category)),
	)

	resp := response.DishToResponse(dish)
	return &resp, nil
}

// UpdateDish invalidates the views of the dish before and after the change,
// it may have moved to another category or restaurant.
func (s *dishService) UpdateDish(ctx context.Context, dishID int64, req *request.DishUpdateRequest) (*response.DishResponse, error) {
	before, err := s.dishRepo.FindByID(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if before == nil {
		return nil, utils.NotFound("Dish not found")
	}

	after, err := s.dishRepo.Update(ctx, dishID, entity.DishPatch{
		RestaurantID: req.RestaurantID,
		Category:     req.Category,
		DishName:     req.DishName,
		Description:  req.Description,
		Price:        req.Price,
	})
	if err != nil {
		return nil, err
	}
	if after == nil {
		return nil, utils.NotFound("Dish not found")
	}

	keys := append(s.cache.keys.DishViews(before), s.cache.keys.DishViews(after)...)
	if err := s.cache.invalidate(ctx, keys...); err != nil {
		return nil, err
	}

	s.log.Info("Dish updated", zap.Int64("dish_id", dishID))

	resp := response.DishToResponse(after)
	return &resp, nil
}

func (s *dishService) DeleteDish(ctx context.Context, dishID int64) error {
	dish, err := s.dishRepo.FindByID(ctx, dishID)
	if err != nil {
		return err
	}
	if dish == nil {
		return utils.NotFound("Dish not found")
	}

	deleted, err := s.dishRepo.Delete(ctx, dishID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("Dish not found")
	}

	if err := s.cache.invalidate(ctx, s.cache.keys.DishViews(dish)...); err != nil {
		return err
	}

	s.log.Info("Dish deleted", zap.Int64("dish_id", dishID))
	return nil
}
