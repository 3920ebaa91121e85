package cachekey

import (
	"reflect"
	"testing"

	"restaurant-reservation/internal/data/entity"
)

func TestBuilder_Keys(t *testing.T) {
	b := New("sirius")
	dessert := entity.CategoryDessert

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"dishes", b.Dishes(nil), "sirius:dishes"},
		{"dishes by category", b.Dishes(&dessert), "sirius:dishes:Десерт"},
		{"dish", b.Dish(3), "sirius:dish:3"},
		{"restaurants", b.Restaurants(), "sirius:restaurants"},
		{"restaurant", b.Restaurant(2), "sirius:restaurant:2"},
		{"menu", b.RestaurantMenu(2, nil), "sirius:restaurant:2:menu"},
		{"menu by category", b.RestaurantMenu(2, &dessert), "sirius:restaurant:2:menu:Десерт"},
		{"reservations", b.Reservations(5), "sirius:reservations:5"},
		{"reservation", b.Reservation(7), "sirius:reservation:7"},
		{"user", b.User(1), "sirius:user:1"},
		{"user reservations", b.UserReservations(1), "sirius:user:1:reservations"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestBuilder_DishViews(t *testing.T) {
	b := New("p")
	dish := &entity.Dish{Base: entity.Base{ID: 9}, RestaurantID: 4, Category: entity.CategorySoup}

	want := []string{
		"p:dish:9",
		"p:dishes",
		"p:dishes:Суп",
		"p:restaurant:4:menu",
		"p:restaurant:4:menu:Суп",
	}
	if got := b.DishViews(dish); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBuilder_ReservationViews(t *testing.T) {
	b := New("p")
	reservation := &entity.Reservation{Base: entity.Base{ID: 3}, RestaurantID: 2, UserID: 8}

	want := []string{"p:reservation:3", "p:reservations:2", "p:user:8:reservations"}
	if got := b.ReservationViews(reservation); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBuilder_MenuViews(t *testing.T) {
	keys := New("p").MenuViews(1)
	if len(keys) != len(entity.DishCategories)+1 {
		t.Fatalf("got %d keys", len(keys))
	}
	if keys[0] != "p:restaurant:1:menu" {
		t.Errorf("first key = %q", keys[0])
	}
}
