package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(100, time.Hour)
	ctx := context.Background()

	if _, found, _ := store.Get(ctx, "k"); found {
		t.Fatal("expected miss")
	}

	payload := []byte(`{"id":1}`)
	if err := store.Set(ctx, "k", payload, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	payload[0] = 'x'

	value, found, err := store.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("hit: found=%v err=%v", found, err)
	}
	if string(value) != `{"id":1}` {
		t.Errorf("stored value changed with caller buffer: %s", value)
	}

	if err := store.Delete(ctx, "k", "missing"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := store.Get(ctx, "k"); found {
		t.Error("expected miss after delete")
	}
}
