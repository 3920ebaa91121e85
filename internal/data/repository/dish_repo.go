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

type DishRepository interface {
	Create(ctx context.Context, dish *entity.Dish) error
	FindByID(ctx context.Context, id int64) (*entity.Dish, error)
	FindAll(ctx context.Context, category *entity.DishCategory) ([]*entity.Dish, error)
	FindByRestaurant(ctx context.Context, restaurantID int64, category *entity.DishCategory) ([]*entity.Dish, error)
	Update(ctx context.Context, id int64, patch entity.DishPatch) (*entity.Dish, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type dishRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDishRepository(db database.PgxIface, log *zap.Logger) DishRepository {
	return &dishRepository{
		db:  db,
		log: log.With(zap.String("repository", "dish")),
	}
}

const dishColumns = `id, restaurant_id, category, dish_name, description, price`

func (r *dishRepository) Create(ctx context.Context, dish *entity.Dish) error {
	query := `
		INSERT INTO dishes (restaurant_id, category, dish_name, description, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + dishColumns

	stored, err := scanDish(r.db.QueryRow(ctx, query,
		dish.RestaurantID,
		string(dish.Category),
		dish.DishName,
		dish.Description,
		dish.Price,
	))
	if err != nil {
		r.log.Error("Failed to create dish",
			zap.Error(err),
			zap.Int64("restaurant_id", dish.RestaurantID),
			zap.String("dish_name", dish.DishName),
		)
		return fmt.Errorf("create dish %s: %w", dish.DishName, classify(err, "create dish"))
	}

	// price comes back rounded to the column scale
	*dish = *stored
	return nil
}

func (r *dishRepository) FindByID(ctx context.Context, id int64) (*entity.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dishes WHERE id = $1`

	dish, err := scanDish(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find dish by ID",
			zap.Error(err),
			zap.Int64("dish_id", id),
		)
		return nil, fmt.Errorf("find dish by ID %d: %w", id, err)
	}

	return dish, nil
}

// FindAll lists every dish, optionally narrowed to one category
func (r *dishRepository) FindAll(ctx context.Context, category *entity.DishCategory) ([]*entity.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dishes`
	args := []any{}

	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, string(*category))
	}
	query += ` ORDER BY id`

	return r.queryDishes(ctx, query, args...)
}

// FindByRestaurant returns the menu of one restaurant in insertion order
func (r *dishRepository) FindByRestaurant(ctx context.Context, restaurantID int64, category *entity.DishCategory) ([]*entity.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dishes WHERE restaurant_id = $1`
	args := []any{restaurantID}

	if category != nil {
		query += ` AND category = $2`
		args = append(args, string(*category))
	}
	query += ` ORDER BY id`

	return r.queryDishes(ctx, query, args...)
}

func (r *dishRepository) Update(ctx context.Context, id int64, patch entity.DishPatch) (*entity.Dish, error) {
	query := `
		UPDATE dishes
		SET restaurant_id = COALESCE($2, restaurant_id),
		    category = COALESCE($3, category),
		    dish_name = COALESCE($4, dish_name),
		    description = COALESCE($5, description),
		    price = COALESCE($6, price)
		WHERE id = $1
		RETURNING ` + dishColumns

	var category *string
	if patch.Category != nil {
		c := string(*patch.Category)
		category = &c
	}

	dish, err := scanDish(r.db.QueryRow(ctx, query,
		id,
		patch.RestaurantID,
		category,
		patch.DishName,
		patch.Description,
		patch.Price,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update dish",
			zap.Error(err),
			zap.Int64("dish_id", id),
		)
		return nil, fmt.Errorf("update dish %d: %w", id, classify(err, "update dish"))
	}

	return dish, nil
}

func (r *dishRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM dishes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete dish",
			zap.Error(err),
			zap.Int64("dish_id", id),
		)
		return false, fmt.Errorf("delete dish %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *dishRepository) queryDishes(ctx context.Context, query string, args ...any) ([]*entity.Dish, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query dishes", zap.Error(err))
		return nil, fmt.Errorf("query dishes: %w", err)
	}
	defer rows.Close()

	var dishes []*entity.Dish
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			r.log.Error("Failed to scan dish row", zap.Error(err))
			return nil, fmt.Errorf("scan dish row: %w", err)
		}
		dishes = append(dishes, dish)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate dish rows: %w", err)
	}

	return dishes, nil
}

func scanDish(row pgx.Row) (*entity.Dish, error) {
	var (
		dish     entity.Dish
		category string
	)

	err := row.Scan(
		&dish.ID,
		&dish.RestaurantID,
		&category,
		&dish.DishName,
		&dish.Description,
		&dish.Price,
	)
	if err != nil {
		return nil, err
	}

	dish.Category, err = entity.ParseDishCategory(category)
	if err != nil {
		return nil, err
	}
	return &dish, nil
}
