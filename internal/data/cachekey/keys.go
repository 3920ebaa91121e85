// Package cachekey builds the deterministic cache keys
// "<prefix>:<kind>[:<discriminator>...]" for every cached view.
package cachekey

import (
	"strconv"
	"strings"

	"restaurant-reservation/internal/data/entity"
)

type Builder struct {
	prefix string
}

func New(prefix string) Builder {
	return Builder{prefix: prefix}
}

func (b Builder) join(parts ...string) string {
	return b.prefix + ":" + strings.Join(parts, ":")
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Dishes addresses the dish collection, optionally filtered by category.
func (b Builder) Dishes(category *entity.DishCategory) string {
	if category != nil {
		return b.join("dishes", string(*category))
	}
	return b.join("dishes")
}

func (b Builder) Dish(dishID int64) string {
	return b.join("dish", id(dishID))
}

func (b Builder) Restaurants() string {
	return b.join("restaurants")
}

func (b Builder) Restaurant(restaurantID int64) string {
	return b.join("restaurant", id(restaurantID))
}

func (b Builder) RestaurantMenu(restaurantID int64, category *entity.DishCategory) string {
	if category != nil {
		return b.join("restaurant", id(restaurantID), "menu", string(*category))
	}
	return b.join("restaurant", id(restaurantID), "menu")
}

// Reservations addresses the reservations of one restaurant.
func (b Builder) Reservations(restaurantID int64) string {
	return b.join("reservations", id(restaurantID))
}

func (b Builder) Reservation(reservationID int64) string {
	return b.join("reservation", id(reservationID))
}

func (b Builder) User(userID int64) string {
	return b.join("user", id(userID))
}

func (b Builder) UserReservations(userID int64) string {
	return b.join("user", id(userID), "reservations")
}

// DishViews returns every key a dish appears in: its own key, the full and
// per-category collections and the full and per-category restaurant menus.
func (b Builder) DishViews(dish *entity.Dish) []string {
	category := dish.Category
	return []string{
		b.Dish(dish.ID),
		b.Dishes(nil),
		b.Dishes(&category),
		b.RestaurantMenu(dish.RestaurantID, nil),
		b.RestaurantMenu(dish.RestaurantID, &category),
	}
}

// ReservationViews returns every key a reservation appears in.
func (b Builder) ReservationViews(reservation *entity.Reservation) []string {
	return []string{
		b.Reservation(reservation.ID),
		b.Reservations(reservation.RestaurantID),
		b.UserReservations(reservation.UserID),
	}
}

// MenuViews returns the unfiltered and every per-category menu key of a restaurant.
func (b Builder) MenuViews(restaurantID int64) []string {
	keys := []string{b.RestaurantMenu(restaurantID, nil)}
	for _, c := range entity.DishCategories {
		category := c
		keys = append(keys, b.RestaurantMenu(restaurantID, &category))
	}
	return keys
}
