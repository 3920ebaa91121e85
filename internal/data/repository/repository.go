package repository

import (
	"errors"

	"restaurant-reservation/pkg/database"
	"restaurant-reservation/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Restaurant  RestaurantRepository
	Dish        DishRepository
	Reservation ReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Restaurant:  NewRestaurantRepository(db, log),
		Dish:        NewDishRepository(db, log),
		Reservation: NewReservationRepository(db, log),
	}
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNumericOutOfRange   = "22003"
)

// classify turns constraint violations into client errors, anything else
// is returned unchanged.
func classify(err error, message string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return utils.Conflict("%s: %s", message, pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return utils.Invalid(message+": referenced entity does not exist", err)
	case pgNumericOutOfRange:
		return utils.Invalid(message+": value out of range", err)
	}
	return err
}
