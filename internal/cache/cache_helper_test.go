package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHelper(t *testing.T) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCacheHelper(client, "roadmap:"), mr
}

type payload struct {
	Title string `json:"title"`
	Steps int    `json:"steps"`
}

func TestCacheHelper_SetGetDelete(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	want := payload{Title: "Full Stack Developer", Steps: 6}
	if err := helper.Set(ctx, "id:abc", want, time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "id:abc", &got); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != want {
		t.Fatalf("Get = %+v, want %+v", got, want)
	}

	if err := helper.Delete(ctx, "id:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := helper.Get(ctx, "id:abc", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected ErrCacheNotFound after delete, got %v", err)
	}
}

func TestCacheHelper_CacheOrExecute(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return payload{Title: "Data Scientist", Steps: 6}, nil
	}

	var first payload
	if err := helper.CacheOrExecute(ctx, "id:ds", &first, time.Minute, fetch); err != nil {
		t.Fatalf("CacheOrExecute error: %v", err)
	}

	var second payload
	if err := helper.CacheOrExecute(ctx, "id:ds", &second, time.Minute, fetch); err != nil {
		t.Fatalf("CacheOrExecute error: %v", err)
	}

	if calls != 1 {
		t.Fatalf("fetch called %d times, want 1 (second read must hit cache)", calls)
	}
	if first != second {
		t.Fatalf("cache returned %+v, fetch returned %+v", second, first)
	}
}

func TestCacheHelper_InvalidatePattern(t *testing.T) {
	helper, _ := newTestHelper(t)
	ctx := context.Background()

	for _, key := range []string{"list:all", "list:Science", "id:abc"} {
		if err := helper.Set(ctx, key, payload{}, time.Minute); err != nil {
			t.Fatalf("Set error: %v", err)
		}
	}

	if err := helper.InvalidatePattern(ctx, "list:*"); err != nil {
		t.Fatalf("InvalidatePattern error: %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "list:Science", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Fatalf("expected list entries to be invalidated, got %v", err)
	}
	if err := helper.Get(ctx, "id:abc", &got); err != nil {
		t.Fatalf("id entry should survive pattern invalidation, got %v", err)
	}
}

func TestCacheHelper_NilClientDegradesGracefully(t *testing.T) {
	helper := NewCacheHelper(nil, "")
	ctx := context.Background()

	if err := helper.Set(ctx, "k", payload{}, time.Minute); err != nil {
		t.Fatalf("Set with nil client should be a no-op, got %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "k", &got); !errors.Is(err, ErrCacheNotAvailable) {
		t.Fatalf("expected ErrCacheNotAvailable, got %v", err)
	}

	// Cache-aside must still serve the fetched value.
	err := helper.CacheOrExecute(ctx, "k", &got, time.Minute, func() (interface{}, error) {
		return payload{Title: "Doctor (MBBS)", Steps: 6}, nil
	})
	if err != nil {
		t.Fatalf("CacheOrExecute error: %v", err)
	}
	if got.Title != "Doctor (MBBS)" {
		t.Fatalf("got %+v", got)
	}
}
