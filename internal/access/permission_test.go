package access

import (
	"errors"
	"testing"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/pkg/utils"
)

func TestAuthorize(t *testing.T) {
	admin, staff, user := entity.RoleAdmin, entity.RoleStaff, entity.RoleUser

	tests := []struct {
		perm    Permission
		allowed []entity.Role
	}{
		{RestaurantCreate, []entity.Role{admin}},
		{RestaurantUpdate, []entity.Role{admin}},
		{RestaurantDelete, []entity.Role{admin}},
		{DishCreate, []entity.Role{admin, staff}},
		{DishUpdate, []entity.Role{admin, staff}},
		{DishDelete, []entity.Role{admin, staff}},
		{ReservationCreate, []entity.Role{admin, staff, user}},
		{ReservationRead, []entity.Role{admin, staff, user}},
		{ReservationUpdate, []entity.Role{staff}},
		{ReservationDelete, []entity.Role{staff}},
		{ReservationListByRestaurant, []entity.Role{admin, staff}},
		{ProfileRead, []entity.Role{admin, staff, user}},
		{ProfileUpdate, []entity.Role{admin, staff, user}},
		{ProfileDelete, []entity.Role{admin, staff, user}},
	}

	for _, tt := range tests {
		for _, role := range []entity.Role{admin, staff, user} {
			want := false
			for _, r := range tt.allowed {
				if r == role {
					want = true
				}
			}

			err := Authorize(role, tt.perm)
			if want && err != nil {
				t.Errorf("%s as %s: unexpected error %v", tt.perm, role, err)
			}
			if !want && !errors.Is(err, utils.ErrForbidden) {
				t.Errorf("%s as %s: err = %v, want forbidden", tt.perm, role, err)
			}
		}
	}
}

func TestAuthorize_UnknownDenied(t *testing.T) {
	if err := Authorize(entity.RoleAdmin, Permission("menu:burn")); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("err = %v, want forbidden", err)
	}
	if err := Authorize(entity.Role("guest"), DishCreate); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("err = %v, want forbidden", err)
	}
}
