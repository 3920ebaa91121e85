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

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts the user and fills in the generated ID
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, hashed_password, phone, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := ur.db.QueryRow(ctx, query,
		user.Username,
		user.HashedPassword,
		user.Phone,
		string(user.Role),
	).Scan(&user.ID)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, classify(err, "username already registered"))
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, username, hashed_password, phone, role
		FROM users
		WHERE id = $1
	`

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, id))
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return user, nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, hashed_password, phone, role
		FROM users
		WHERE username = $1
	`

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, username))
	if err != nil {
		ur.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return user, nil
}

// Update applies the non-nil fields of patch, nil result means no such user
func (ur *userRepository) Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
	query := `
		UPDATE users
		SET username = COALESCE($2, username),
		    hashed_password = COALESCE($3, hashed_password),
		    phone = COALESCE($4, phone)
		WHERE id = $1
		RETURNING id, username, hashed_password, phone, role
	`

	user, err := ur.scanUser(ur.db.QueryRow(ctx, query, id, patch.Username, patch.HashedPassword, patch.Phone))
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("update user %d: %w", id, classify(err, "username already registered"))
	}

	return user, nil
}

func (ur *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	ur.log.Info("User deleted", zap.Int64("user_id", id))
	return true, nil
}

// scanUser reads one user row, a missing row yields nil without error
func (ur *userRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var (
		user entity.User
		role string
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.HashedPassword,
		&user.Phone,
		&role,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.Role, err = entity.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
