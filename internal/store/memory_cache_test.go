package store

import (
	"context"
	"strconv"
	"sync"
	"testing"
)

func TestMemoryCachePutAndGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Put(ctx, "play-1", "A short pass."); err != nil {
		t.Fatalf("unexpected put error %v", err)
	}

	got, ok, err := c.Get(ctx, "play-1")
	if err != nil || !ok {
		t.Fatalf("expected cached value, got ok=%v err=%v", ok, err)
	}
	if got != "A short pass." {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestMemoryCacheGetMissing(t *testing.T) {
	c := NewMemoryCache()
	if _, ok, _ := c.Get(context.Background(), "missing"); ok {
		t.Fatalf("expected missing key to return false")
	}
}

func TestMemoryCachePutReplaces(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	_ = c.Put(ctx, "k", "old")
	_ = c.Put(ctx, "k", "new")

	if got, _, _ := c.Get(ctx, "k"); got != "new" {
		t.Fatalf("expected replacement, got %q", got)
	}
	if c.Len() != 1 {
		t.Fatalf("expected single entry, got %d", c.Len())
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := strconv.Itoa(i % 10)
			_ = c.Put(ctx, key, "v")
			_, _, _ = c.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	if c.Len() != 10 {
		t.Fatalf("expected 10 keys, got %d", c.Len())
	}
}
