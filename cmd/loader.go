package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"restaurant-reservation/internal/data/cachekey"
	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/pkg/cache"
	"restaurant-reservation/pkg/database"
	"restaurant-reservation/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// fixtureColumns lists the tables a fixture file may target and the columns
// its objects may set.
var fixtureColumns = map[string][]string{
	"users":        {"id", "username", "hashed_password", "phone", "role"},
	"restaurants":  {"id", "name", "address", "description"},
	"dishes":       {"id", "restaurant_id", "category", "dish_name", "description", "price"},
	"reservations": {"id", "user_id", "restaurant_id", "date_reserv", "guest_count", "status", "comment"},
}

// LoadFixtures inserts every object of every file into the table named by
// the file stem (users.json -> users). Each file is loaded in one
// transaction, and the id sequence is moved past the loaded rows.
// User objects may carry a plain "password" which is hashed on the way in.
// Once a file is committed, every cached view its rows appear in is dropped
// from store, so negative entries cached before the load do not hide them.
func LoadFixtures(ctx context.Context, db database.PgxIface, store cache.Store, keys cachekey.Builder, paths []string, logger *zap.Logger) error {
	for _, path := range paths {
		table := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, ok := fixtureColumns[table]; !ok {
			return fmt.Errorf("fixture %s: unknown table %q", path, table)
		}

		rows, err := readFixture(path)
		if err != nil {
			return err
		}

		stale, err := loadTable(ctx, db, keys, table, rows)
		if err != nil {
			return fmt.Errorf("fixture %s: %w", path, err)
		}

		if err := store.Delete(ctx, stale...); err != nil {
			return fmt.Errorf("fixture %s: invalidate cache: %w", path, err)
		}

		logger.Info("Fixture loaded",
			zap.String("file", path),
			zap.String("table", table),
			zap.Int("rows", len(rows)),
			zap.Int("cache_keys", len(stale)),
		)
	}
	return nil
}

func readFixture(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var rows []map[string]any
	if err := decoder.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return rows, nil
}

// loadTable returns the cache keys of the committed rows
func loadTable(ctx context.Context, db database.PgxIface, keys cachekey.Builder, table string, rows []map[string]any) ([]string, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	stale, err := insertRows(ctx, tx, keys, table, rows)
	if err != nil {
		tx.Rollback(ctx)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return stale, nil
}

func insertRows(ctx context.Context, tx pgx.Tx, keys cachekey.Builder, table string, rows []map[string]any) ([]string, error) {
	var stale []string
	for i, row := range rows {
		columns, values, err := prepareRow(table, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		placeholders := make([]string, len(columns))
		quoted := make([]string, len(columns))
		for j, column := range columns {
			placeholders[j] = fmt.Sprintf("$%d", j+1)
			quoted[j] = pgx.Identifier{column}.Sanitize()
		}

		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
			pgx.Identifier{table}.Sanitize(),
			strings.Join(quoted, ", "),
			strings.Join(placeholders, ", "),
		)
		var id int64
		if err := tx.QueryRow(ctx, query, values...).Scan(&id); err != nil {
			return nil, fmt.Errorf("insert row %d: %w", i, err)
		}

		rowKeys, err := viewsOf(keys, table, id, columns, values)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		stale = append(stale, rowKeys...)
	}

	// rows loaded with explicit ids must not collide with later inserts
	resetSeq := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %s",
		table, pgx.Identifier{table}.Sanitize(),
	)
	if _, err := tx.Exec(ctx, resetSeq); err != nil {
		return nil, fmt.Errorf("reset id sequence: %w", err)
	}
	return stale, nil
}

// viewsOf lists the cached views a freshly inserted row belongs to.
func viewsOf(keys cachekey.Builder, table string, id int64, columns []string, values []any) ([]string, error) {
	value := func(column string) any {
		for i, c := range columns {
			if c == column {
				return values[i]
			}
		}
		return nil
	}
	ref := func(column string) int64 {
		n, _ := value(column).(int64)
		return n
	}

	switch table {
	case "users":
		return []string{keys.User(id), keys.UserReservations(id)}, nil
	case "restaurants":
		views := []string{keys.Restaurants(), keys.Restaurant(id), keys.Reservations(id)}
		return append(views, keys.MenuViews(id)...), nil
	case "dishes":
		raw, _ := value("category").(string)
		category, err := entity.ParseDishCategory(raw)
		if err != nil {
			return nil, err
		}
		return keys.DishViews(&entity.Dish{
			Base:         entity.Base{ID: id},
			RestaurantID: ref("restaurant_id"),
			Category:     category,
		}), nil
	case "reservations":
		return keys.ReservationViews(&entity.Reservation{
			Base:         entity.Base{ID: id},
			UserID:       ref("user_id"),
			RestaurantID: ref("restaurant_id"),
		}), nil
	}
	return nil, nil
}

// prepareRow returns the columns of row in a stable order with values
// converted to types the driver can encode.
func prepareRow(table string, row map[string]any) ([]string, []any, error) {
	if table == "users" {
		if password, ok := row["password"].(string); ok {
			hashed, err := utils.HashPassword(password)
			if err != nil {
				return nil, nil, fmt.Errorf("hash password: %w", err)
			}
			row["hashed_password"] = hashed
			delete(row, "password")
		}
	}

	allowed := make(map[string]bool, len(fixtureColumns[table]))
	for _, column := range fixtureColumns[table] {
		allowed[column] = true
	}

	columns := make([]string, 0, len(row))
	for column := range row {
		if !allowed[column] {
			return nil, nil, fmt.Errorf("unknown column %q for table %s", column, table)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	values := make([]any, len(columns))
	for i, column := range columns {
		value, err := convertValue(column, row[column])
		if err != nil {
			return nil, nil, err
		}
		values[i] = value
	}
	return columns, values, nil
}

func convertValue(column string, value any) (any, error) {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", column, err)
		}
		return f, nil
	case string:
		if column == "date_reserv" {
			return parseTimestamp(column, v)
		}
		return v, nil
	default:
		return v, nil
	}
}

// fixtures may omit the offset, such timestamps are read as UTC
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseTimestamp(column, value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("column %s: unsupported timestamp %q", column, value)
}
