// Package access holds the role based permission table.
package access

import (
	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/pkg/utils"
)

type Permission string

const (
	RestaurantCreate Permission = "restaurant:create"
	RestaurantUpdate Permission = "restaurant:update"
	RestaurantDelete Permission = "restaurant:delete"

	DishCreate Permission = "dish:create"
	DishUpdate Permission = "dish:update"
	DishDelete Permission = "dish:delete"

	ReservationCreate           Permission = "reservation:create"
	ReservationRead             Permission = "reservation:read"
	ReservationUpdate           Permission = "reservation:update"
	ReservationDelete           Permission = "reservation:delete"
	ReservationListByRestaurant Permission = "reservation:list-by-restaurant"

	ProfileRead   Permission = "profile:read"
	ProfileUpdate Permission = "profile:update"
	ProfileDelete Permission = "profile:delete"
)

var (
	anyRole      = []entity.Role{entity.RoleAdmin, entity.RoleStaff, entity.RoleUser}
	adminOnly    = []entity.Role{entity.RoleAdmin}
	staffOnly    = []entity.Role{entity.RoleStaff}
	adminOrStaff = []entity.Role{entity.RoleAdmin, entity.RoleStaff}
)

var table = map[Permission][]entity.Role{
	RestaurantCreate: adminOnly,
	RestaurantUpdate: adminOnly,
	RestaurantDelete: adminOnly,

	DishCreate: adminOrStaff,
	DishUpdate: adminOrStaff,
	DishDelete: adminOrStaff,

	ReservationCreate:           anyRole,
	ReservationRead:             anyRole,
	ReservationUpdate:           staffOnly,
	ReservationDelete:           staffOnly,
	ReservationListByRestaurant: adminOrStaff,

	ProfileRead:   anyRole,
	ProfileUpdate: anyRole,
	ProfileDelete: anyRole,
}

// Authorize returns a forbidden error unless role is in the allow-set of p.
// Unknown permissions deny everyone.
func Authorize(role entity.Role, p Permission) error {
	for _, allowed := range table[p] {
		if allowed == role {
			return nil
		}
	}
	return utils.Forbidden("Access denied for this operation")
}

// SeesAll reports whether role may read resources owned by other users.
func SeesAll(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleStaff
}
