package cmd

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"restaurant-reservation/internal/data/cachekey"
	"restaurant-reservation/pkg/cache"

	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

var testKeys = cachekey.New("test")

func load(mock pgxmock.PgxPoolIface, store cache.Store, paths ...string) error {
	return LoadFixtures(context.Background(), mock, store, testKeys, paths, zap.NewNop())
}

func newStore() cache.Store {
	return cache.NewMemoryStore(100, time.Hour)
}

func writeFixture(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixtures_Restaurants(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	path := writeFixture(t, "restaurants.json", `[{"id": 1, "name": "Пушкин", "address": "Тверской б-р", "description": "Русская кухня"}]`)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "restaurants" ("address", "description", "id", "name") VALUES ($1, $2, $3, $4) RETURNING id`)).
		WithArgs("Тверской б-р", "Русская кухня", int64(1), "Пушкин").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta("SELECT setval(pg_get_serial_sequence('restaurants', 'id')")).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectCommit()

	if err := load(mock, newStore(), path); err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestLoadFixtures_UserPasswordIsHashed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	path := writeFixture(t, "users.json", `[{"username": "admin", "password": "secret", "phone": "1", "role": "Администратор"}]`)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users" ("hashed_password", "phone", "role", "username")`)).
		WithArgs(pgxmock.AnyArg(), "1", "Администратор", "admin").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta("SELECT setval")).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectCommit()

	if err := load(mock, newStore(), path); err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestLoadFixtures_Rejects(t *testing.T) {
	t.Run("unknown table", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("new pool: %v", err)
		}
		defer mock.Close()

		path := writeFixture(t, "menus.json", `[]`)
		if err := load(mock, newStore(), path); err == nil {
			t.Fatal("expected error for unknown table")
		}
	})

	t.Run("unknown column rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("new pool: %v", err)
		}
		defer mock.Close()

		path := writeFixture(t, "dishes.json", `[{"restaurant_id": 1, "calories": 100}]`)

		mock.ExpectBegin()
		mock.ExpectRollback()

		if err := load(mock, newStore(), path); err == nil {
			t.Fatal("expected error for unknown column")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}

func TestLoadFixtures_DropsCachedViews(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer mock.Close()

	ctx := context.Background()
	store := newStore()

	// negative entries cached while the tables were empty
	stale := []string{
		testKeys.Restaurants(),
		testKeys.Restaurant(1),
		testKeys.Dishes(nil),
		"test:dishes:Десерт",
		"test:restaurant:1:menu:Десерт",
		testKeys.Dish(5),
	}
	for _, key := range stale {
		if err := store.Set(ctx, key, []byte("[]"), time.Hour); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	untouched := testKeys.Restaurant(2)
	if err := store.Set(ctx, untouched, []byte("{}"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	restaurants := writeFixture(t, "restaurants.json", `[{"name": "Пушкин", "address": "a", "description": "d"}]`)
	dishes := writeFixture(t, "dishes.json", `[{"restaurant_id": 1, "category": "Десерт", "dish_name": "Медовик", "description": "x", "price": 350}]`)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "restaurants"`)).
		WithArgs("a", "d", "Пушкин").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta("SELECT setval")).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "dishes"`)).
		WithArgs("Десерт", "x", "Медовик", int64(350), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec(regexp.QuoteMeta("SELECT setval")).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectCommit()

	if err := load(mock, store, restaurants, dishes); err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}

	for _, key := range stale {
		if _, found, _ := store.Get(ctx, key); found {
			t.Errorf("%s still cached after load", key)
		}
	}
	if _, found, _ := store.Get(ctx, untouched); !found {
		t.Errorf("%s should survive the load", untouched)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestConvertValue_Timestamps(t *testing.T) {
	want := time.Date(2024, 3, 8, 19, 30, 0, 0, time.UTC)

	for _, in := range []string{"2024-03-08T19:30:00Z", "2024-03-08T19:30:00", "2024-03-08 19:30:00"} {
		got, err := convertValue("date_reserv", in)
		if err != nil {
			t.Fatalf("convertValue(%q): %v", in, err)
		}
		if ts, ok := got.(time.Time); !ok || !ts.Equal(want) {
			t.Errorf("convertValue(%q) = %v", in, got)
		}
	}

	if _, err := convertValue("date_reserv", "tomorrow"); err == nil {
		t.Error("expected error for unparsable timestamp")
	}
	if got, _ := convertValue("comment", "2024-03-08"); got != "2024-03-08" {
		t.Errorf("non timestamp column converted: %v", got)
	}
}
