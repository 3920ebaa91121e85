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

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)
	Update(ctx context.Context, id int64, patch entity.RestaurantPatch) (*entity.Restaurant, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type restaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantRepository(db database.PgxIface, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (name, address, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		restaurant.Name,
		restaurant.Address,
		restaurant.Description,
	).Scan(&restaurant.ID)

	if err != nil {
		r.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("name", restaurant.Name),
		)
		return fmt.Errorf("create restaurant %s: %w", restaurant.Name, classify(err, "create restaurant"))
	}

	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	query := `
		SELECT id, name, address, description
		FROM restaurants
		WHERE id = $1
	`

	var restaurant entity.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.Description,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.Int64("restaurant_id", id),
		)
		return nil, fmt.Errorf("find restaurant by ID %d: %w", id, err)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, name, address, description
		FROM restaurants
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all restaurants", zap.Error(err))
		return nil, fmt.Errorf("find all restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*entity.Restaurant
	for rows.Next() {
		var restaurant entity.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Address,
			&restaurant.Description,
		)
		if err != nil {
			r.log.Error("Failed to scan restaurant row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, &restaurant)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate restaurant rows: %w", err)
	}

	return restaurants, nil
}

// Update overwrites the non-nil fields of patch and returns the stored row,
// or nil when the restaurant does not exist.
func (r *restaurantRepository) Update(ctx context.Context, id int64, patch entity.RestaurantPatch) (*entity.Restaurant, error) {
	query := `
		UPDATE restaurants
		SET name = COALESCE($2, name),
		    address = COALESCE($3, address),
		    description = COALESCE($4, description)
		WHERE id = $1
		RETURNING id, name, address, description
	`

	var restaurant entity.Restaurant
	err := r.db.QueryRow(ctx, query, id, patch.Name, patch.Address, patch.Description).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.Description,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", id),
		)
		return nil, fmt.Errorf("update restaurant %d: %w", id, err)
	}

	return &restaurant, nil
}

// Delete removes the restaurant, its dishes and reservations go with it (FK cascade).
func (r *restaurantRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM restaurants WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete restaurant",
			zap.Error(err),
			zap.Int64("restaurant_id", id),
		)
		return false, fmt.Errorf("delete restaurant %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Restaurant deleted", zap.Int64("restaurant_id", id))
	return true, nil
}
