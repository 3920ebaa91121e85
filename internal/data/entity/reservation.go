package entity

import "time"

type Reservation struct {
	Base
	UserID       int64     `db:"user_id"`
	RestaurantID int64     `db:"restaurant_id"`
	DateReserv   time.Time `db:"date_reserv"`
	GuestCount   int       `db:"guest_count"`
	Status       bool      `db:"status"`
	Comment      *string   `db:"comment"`
}

type ReservationPatch struct {
	UserID       *int64
	RestaurantID *int64
	DateReserv   *time.Time
	GuestCount   *int
	Status       *bool
	Comment      *string
}
