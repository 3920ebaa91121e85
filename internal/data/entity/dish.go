package entity

import (
	"encoding/json"
	"fmt"
)

type DishCategory string

const (
	CategoryAppetizer  DishCategory = "Закуска"
	CategoryMainCourse DishCategory = "Основное блюдо"
	CategoryDessert    DishCategory = "Десерт"
	CategorySoup       DishCategory = "Суп"
	CategorySalad      DishCategory = "Салат"
	CategoryHotDrink   DishCategory = "Горячий напиток"
	CategoryColdDrink  DishCategory = "Холодный напиток"
)

// DishCategories lists every category in declaration order.
var DishCategories = []DishCategory{
	CategoryAppetizer,
	CategoryMainCourse,
	CategoryDessert,
	CategorySoup,
	CategorySalad,
	CategoryHotDrink,
	CategoryColdDrink,
}

var categoryAliases = map[string]DishCategory{
	"Appetizer":  CategoryAppetizer,
	"MainCourse": CategoryMainCourse,
	"Dessert":    CategoryDessert,
	"Soup":       CategorySoup,
	"Salad":      CategorySalad,
	"HotDrink":   CategoryHotDrink,
	"ColdDrink":  CategoryColdDrink,
}

// ParseDishCategory accepts the stored value or its English identifier.
func ParseDishCategory(value string) (DishCategory, error) {
	for _, c := range DishCategories {
		if string(c) == value {
			return c, nil
		}
	}
	if c, ok := categoryAliases[value]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown dish category %q", value)
}

func (c *DishCategory) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDishCategory(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

type Dish struct {
	Base
	RestaurantID int64        `db:"restaurant_id"`
	Category     DishCategory `db:"category"`
	DishName     string       `db:"dish_name"`
	Description  string       `db:"description"`
	Price        float64      `db:"price"`
}

type DishPatch struct {
	RestaurantID *int64
	Category     *DishCategory
	DishName     *string
	Description  *string
	Price        *float64
}
