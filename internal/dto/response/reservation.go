package response

import (
	"time"

	"restaurant-reservation/internal/data/entity"
)

type ReservationResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	RestaurantID int64     `json:"restaurant_id"`
	DateReserv   time.Time `json:"date_reserv"`
	GuestCount   int       `json:"guest_count"`
	Status       bool      `json:"status"`
	Comment      *string   `json:"comment"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           reservation.ID,
		UserID:       reservation.UserID,
		RestaurantID: reservation.RestaurantID,
		DateReserv:   reservation.DateReserv,
		GuestCount:   reservation.GuestCount,
		Status:       reservation.Status,
		Comment:      reservation.Comment,
	}
}

func ReservationsToResponse(reservations []*entity.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		out[i] = ReservationToResponse(reservation)
	}
	return out
}
