package response

import "restaurant-reservation/internal/data/entity"

type RestaurantResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type DishResponse struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurant_id"`
	Category     string  `json:"category"`
	DishName     string  `json:"dish_name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
}

// Helper converters
func RestaurantToResponse(restaurant *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Address:     restaurant.Address,
		Description: restaurant.Description,
	}
}

func RestaurantsToResponse(restaurants []*entity.Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, len(restaurants))
	for i, restaurant := range restaurants {
		out[i] = RestaurantToResponse(restaurant)
	}
	return out
}

func DishToResponse(dish *entity.Dish) DishResponse {
	return DishResponse{
		ID:           dish.ID,
		RestaurantID: dish.RestaurantID,
		Category:     string(dish.Category),
		DishName:     dish.DishName,
		Description:  dish.Description,
		Price:        dish.Price,
	}
}

func DishesToResponse(dishes []*entity.Dish) []DishResponse {
	out := make([]DishResponse, len(dishes))
	for i, dish := range dishes {
		out[i] = DishToResponse(dish)
	}
	return out
}
