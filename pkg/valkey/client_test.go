package valkey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(DefaultOptions().WithAddr(mr.Addr()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	h := ClientHash{Secret: "s", Name: "CBR-1", Vendor: "mikrotik"}
	if err := client.HSet(ctx, ClientKey("10.0.0.1"), h.Values()).Err(); err != nil {
		t.Fatalf("HSet() error = %v", err)
	}
	if got := mr.HGet("client:10.0.0.1", "secret"); got != "s" {
		t.Errorf("HGet() = %q, want %q", got, "s")
	}

	m, err := client.HGetAll(ctx, ClientKey("10.0.0.1")).Result()
	if err != nil {
		t.Fatalf("HGetAll() error = %v", err)
	}
	got, ok := ClientHashFromMap(m)
	if !ok || got != h {
		t.Errorf("ClientHashFromMap() = %+v, %v, want %+v", got, ok, h)
	}
}

func TestNewClientSelectsDB(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(DefaultOptions().WithAddr(mr.Addr()).WithDB(2))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	if err := client.Set(context.Background(), "k", "v", 0).Err(); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, _ := mr.DB(2).Get("k"); got != "v" {
		t.Errorf("DB(2).Get() = %q, want v", got)
	}
}

func TestNewClientConnectionError(t *testing.T) {
	opts := DefaultOptions().
		WithAddr("localhost:59999").
		WithTimeouts(100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond)

	if _, err := NewClient(opts); err == nil {
		t.Error("NewClient() expected error for invalid address")
	}
}

func TestIsKeyNotFound(t *testing.T) {
	if !IsKeyNotFound(redis.Nil) {
		t.Error("IsKeyNotFound(redis.Nil) = false")
	}
	if IsKeyNotFound(errors.New("other")) {
		t.Error("IsKeyNotFound(other) = true")
	}
}
