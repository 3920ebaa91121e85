package cache

import (
	"context"
	"net"
	"testing"
	"time"

	"restaurant-reservation/pkg/utils"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	store := NewRedisStore(utils.RedisConfig{Host: host, Port: port})
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	if _, found, err := store.Get(ctx, "p:dish:1"); err != nil || found {
		t.Fatalf("miss: found=%v err=%v", found, err)
	}

	if err := store.Set(ctx, "p:dish:1", []byte(`{"id":1}`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl := mr.TTL("p:dish:1"); ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", ttl)
	}

	value, found, err := store.Get(ctx, "p:dish:1")
	if err != nil || !found {
		t.Fatalf("hit: found=%v err=%v", found, err)
	}
	if string(value) != `{"id":1}` {
		t.Errorf("value = %s", value)
	}

	if err := store.Set(ctx, "p:dishes", []byte(`[]`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete(ctx, "p:dish:1", "p:dishes", "p:absent"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if mr.Exists("p:dish:1") || mr.Exists("p:dishes") {
		t.Error("keys should be gone")
	}
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "p:restaurants", []byte(`[]`), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, found, err := store.Get(ctx, "p:restaurants"); err != nil || found {
		t.Fatalf("expected expired miss, found=%v err=%v", found, err)
	}
}

func TestRedisStore_Failure(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.Close()

	if _, _, err := store.Get(context.Background(), "p:dish:1"); err == nil {
		t.Fatal("expected error from closed server")
	}
	if err := store.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error from closed server")
	}
}
