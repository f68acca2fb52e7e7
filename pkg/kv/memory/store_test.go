package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/leapbw/leapauth/pkg/kv"
)

type record struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

// Requirement: Set followed by Get returns a value deep-equal to the one
// stored.
func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := New()

	want := record{Name: "leap", Count: 3, Tags: []string{"a", "b"}}
	if err := store.Set(ctx, "k", want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	var got record
	if err := store.Get(ctx, "k", &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

// Requirement: a missing key reports ErrKeyNotFound.
func TestStore_Get_NotFound(t *testing.T) {
	store := New()

	var out record
	err := store.Get(context.Background(), "missing", &out)
	if !errors.Is(err, kv.ErrKeyNotFound) {
		t.Errorf("Get() error = %v, want ErrKeyNotFound", err)
	}
}

// Requirement: Set overwrites any prior value for the key.
func TestStore_Set_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := New()

	_ = store.Set(ctx, "k", record{Name: "old"})
	_ = store.Set(ctx, "k", record{Name: "new"})

	var got record
	if err := store.Get(ctx, "k", &got); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "new" {
		t.Errorf("Get() Name = %q, want %q", got.Name, "new")
	}
}

// Requirement: removing a key that was never set is not an error and leaves
// the store unchanged.
func TestStore_Remove_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := New()
	_ = store.Set(ctx, "keep", record{Name: "keep"})

	if err := store.Remove(ctx, "never-set"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}

	if err := store.Remove(ctx, "keep"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := store.Remove(ctx, "keep"); err != nil {
		t.Fatalf("second Remove() error = %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

// Requirement: Clear deletes every key.
func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := New()
	_ = store.Set(ctx, "a", 1)
	_ = store.Set(ctx, "b", 2)

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	var out int
	if err := store.Get(ctx, "a", &out); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Errorf("Get() after Clear error = %v, want ErrKeyNotFound", err)
	}
}

// Requirement: stats count hits, misses, and sets.
func TestStore_Stats(t *testing.T) {
	ctx := context.Background()
	store := New()

	_ = store.Set(ctx, "k", 1)
	var out int
	_ = store.Get(ctx, "k", &out)
	_ = store.Get(ctx, "missing", &out)

	stats := store.Stats()
	if stats.Sets != 1 || stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("Stats() = %+v, want 1 set, 1 hit, 1 miss", stats)
	}
	if stats.Size != 1 {
		t.Errorf("Stats() Size = %d, want 1", stats.Size)
	}
}
