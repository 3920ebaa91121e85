package request

import "restaurant-reservation/internal/data/entity"

// Category accepts the stored value or its English identifier,
// unknown categories fail during decoding.
type DishRequest struct {
	RestaurantID int64               `json:"restaurant_id" validate:"required,gt=0"`
	Category     entity.DishCategory `json:"category" validate:"required"`
	DishName     string              `json:"dish_name" validate:"required,min=1,max=100"`
	Description  string              `json:"description" validate:"required,max=1000"`
	Price        float64             `json:"price" validate:"gte=0,lte=99999999.99"`
}

type DishUpdateRequest struct {
	RestaurantID *int64               `json:"restaurant_id,omitempty" validate:"omitempty,gt=0"`
	Category     *entity.DishCategory `json:"category,omitempty"`
	DishName     *string              `json:"dish_name,omitempty" validate:"omitempty,min=1,max=100"`
	Description  *string              `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price        *float64             `json:"price,omitempty" validate:"omitempty,gte=0,lte=99999999.99"`
}
