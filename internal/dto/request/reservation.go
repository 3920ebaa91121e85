package request

import "time"

// UserID absent or 0 means the caller books for themself
type ReservationRequest struct {
	UserID       *int64     `json:"user_id,omitempty" validate:"omitempty,gte=0"`
	RestaurantID int64      `json:"restaurant_id" validate:"required,gt=0"`
	DateReserv   *time.Time `json:"date_reserv" validate:"required"`
	GuestCount   int        `json:"guest_count" validate:"required,gt=0,max=100"`
	Status       *bool      `json:"status,omitempty"`
	Comment      *string    `json:"comment,omitempty" validate:"omitempty,max=500"`
}

type ReservationUpdateRequest struct {
	UserID       *int64     `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	RestaurantID *int64     `json:"restaurant_id,omitempty" validate:"omitempty,gt=0"`
	DateReserv   *time.Time `json:"date_reserv,omitempty"`
	GuestCount   *int       `json:"guest_count,omitempty" validate:"omitempty,gt=0,max=100"`
	Status       *bool      `json:"status,omitempty"`
	Comment      *string    `json:"comment,omitempty" validate:"omitempty,max=500"`
}
