package database

import (
	"testing"

	"restaurant-reservation/pkg/utils"
)

func TestPoolConfig(t *testing.T) {
	cfg, err := poolConfig(utils.DatabaseConfig{
		Host:     "db.internal",
		Port:     "6432",
		Name:     "reservations",
		User:     "app",
		Password: "secret",
		MaxConns: 1,
	}, "restaurant-reservation")
	if err != nil {
		t.Fatalf("poolConfig: %v", err)
	}

	conn := cfg.ConnConfig
	if conn.Host != "db.internal" || conn.Port != 6432 || conn.Database != "reservations" || conn.User != "app" {
		t.Errorf("conn config = %s:%d/%s as %s", conn.Host, conn.Port, conn.Database, conn.User)
	}
	if conn.RuntimeParams["application_name"] != "restaurant-reservation" {
		t.Errorf("application_name = %q", conn.RuntimeParams["application_name"])
	}
	if cfg.MaxConns != 1 || cfg.MinConns != 1 {
		t.Errorf("pool size = %d/%d, want min capped by max", cfg.MinConns, cfg.MaxConns)
	}
}
