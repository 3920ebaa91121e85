package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

var userCols = []string{"id", "username", "hashed_password", "phone", "role"}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("ivan").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(1), "ivan", "hash", "89001234567", "Сотрудник"))

	repo := NewUserRepository(mock, zap.NewNop())
	user, err := repo.FindByUsername(context.Background(), "ivan")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if user == nil || user.ID != 1 || user.Role != entity.RoleStaff {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("ivan", "hash", "89001234567", "Пользователь").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	repo := NewUserRepository(mock, zap.NewNop())
	err = repo.Create(context.Background(), &entity.User{
		Username:       "ivan",
		HashedPassword: "hash",
		Phone:          "89001234567",
		Role:           entity.RoleUser,
	})
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestUserRepository_FindByID_UnknownRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(1), "ivan", "hash", "89001234567", "Superuser"))

	repo := NewUserRepository(mock, zap.NewNop())
	if _, err := repo.FindByID(context.Background(), 1); err == nil {
		t.Fatal("expected error for unknown role")
	}
}
