package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id int64) (*entity.Reservation, error)
	FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Reservation, error)
	FindByUser(ctx context.Context, userID int64) ([]*entity.Reservation, error)
	Update(ctx context.Context, id int64, patch entity.ReservationPatch) (*entity.Reservation, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, user_id, restaurant_id, date_reserv, guest_count, status, comment`

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (user_id, restaurant_id, date_reserv, guest_count, status, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reservationColumns

	stored, err := scanReservation(r.db.QueryRow(ctx, query,
		reservation.UserID,
		reservation.RestaurantID,
		reservation.DateReserv,
		reservation.GuestCount,
		reservation.Status,
		reservation.Comment,
	))
	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.Int64("user_id", reservation.UserID),
			zap.Int64("restaurant_id", reservation.RestaurantID),
		)
		return fmt.Errorf("create reservation: %w", classify(err, "create reservation"))
	}

	*reservation = *stored
	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return nil, fmt.Errorf("find reservation by ID %d: %w", id, err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE restaurant_id = $1 ORDER BY id`
	return r.queryReservations(ctx, query, restaurantID)
}

func (r *reservationRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id = $1 ORDER BY id`
	return r.queryReservations(ctx, query, userID)
}

func (r *reservationRepository) Update(ctx context.Context, id int64, patch entity.ReservationPatch) (*entity.Reservation, error) {
	query := `
		UPDATE reservations
		SET user_id = COALESCE($2, user_id),
		    restaurant_id = COALESCE($3, restaurant_id),
		    date_reserv = COALESCE($4, date_reserv),
		    guest_count = COALESCE($5, guest_count),
		    status = COALESCE($6, status),
		    comment = COALESCE($7, comment)
		WHERE id = $1
		RETURNING ` + reservationColumns

	reservation, err := scanReservation(r.db.QueryRow(ctx, query,
		id,
		patch.UserID,
		patch.RestaurantID,
		patch.DateReserv,
		patch.GuestCount,
		patch.Status,
		patch.Comment,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return nil, fmt.Errorf("update reservation %d: %w", id, classify(err, "update reservation"))
	}

	return reservation, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.Int64("reservation_id", id),
		)
		return false, fmt.Errorf("delete reservation %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *reservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]*entity.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query reservations", zap.Error(err))
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate reservation rows: %w", err)
	}

	return reservations, nil
}

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.RestaurantID,
		&reservation.DateReserv,
		&reservation.GuestCount,
		&reservation.Status,
		&reservation.Comment,
	)
	if err != nil {
		return nil, err
	}
	reservation.DateReserv = reservation.DateReserv.UTC()
	return &reservation, nil
}
