package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"restaurant-reservation/internal/data/entity"

	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

var restaurantCols = []string{"id", "name", "address", "description"}

func TestRestaurantRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO restaurants")).
		WithArgs("Пушкин", "Тверской б-р, 26А", "Русская кухня").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := NewRestaurantRepository(mock, zap.NewNop())
	restaurant := &entity.Restaurant{Name: "Пушкин", Address: "Тверской б-р, 26А", Description: "Русская кухня"}
	if err := repo.Create(context.Background(), restaurant); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if restaurant.ID != 7 {
		t.Errorf("id = %d, want 7", restaurant.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRestaurantRepository_FindByID_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM restaurants")).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(restaurantCols))

	repo := NewRestaurantRepository(mock, zap.NewNop())
	got, err := repo.FindByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestRestaurantRepository_FindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id")).
		WillReturnRows(pgxmock.NewRows(restaurantCols).
			AddRow(int64(1), "A", "addr a", "desc a").
			AddRow(int64(2), "B", "addr b", "desc b"))

	repo := NewRestaurantRepository(mock, zap.NewNop())
	got, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].Name != "B" {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestRestaurantRepository_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	name := "Новое имя"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE restaurants")).
		WithArgs(int64(3), &name, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(restaurantCols).AddRow(int64(3), name, "addr", "desc"))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE restaurants")).
		WithArgs(int64(4), &name, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(restaurantCols))

	repo := NewRestaurantRepository(mock, zap.NewNop())
	got, err := repo.Update(context.Background(), 3, entity.RestaurantPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got == nil || got.Name != name || got.Address != "addr" {
		t.Errorf("unexpected result %+v", got)
	}

	missing, err := repo.Update(context.Background(), 4, entity.RestaurantPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing row, got %+v", missing)
	}
}

func TestRestaurantRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM restaurants")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM restaurants")).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM restaurants")).
		WithArgs(int64(3)).
		WillReturnError(errors.New("connection reset"))

	repo := NewRestaurantRepository(mock, zap.NewNop())

	if ok, err := repo.Delete(context.Background(), 1); err != nil || !ok {
		t.Errorf("Delete(1) = %v, %v", ok, err)
	}
	if ok, err := repo.Delete(context.Background(), 2); err != nil || ok {
		t.Errorf("Delete(2) = %v, %v", ok, err)
	}
	if _, err := repo.Delete(context.Background(), 3); err == nil {
		t.Error("expected store failure to propagate")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
