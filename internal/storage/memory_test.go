package storage

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "project_1_abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on empty store, got: %v", err)
	}

	if err := kv.Set(ctx, "project_1_abc", []byte(`{"id":"project_1_abc"}`)); err != nil {
		t.Fatalf("can't set value: %v", err)
	}
	value, err := kv.Get(ctx, "project_1_abc")
	if err != nil {
		t.Fatalf("Expected value, got error: %v", err)
	}
	if string(value) != `{"id":"project_1_abc"}` {
		t.Errorf("Unexpected value: %s", value)
	}

	// last write wins
	if err := kv.Set(ctx, "project_1_abc", []byte(`{"id":"project_1_abc","progress":40}`)); err != nil {
		t.Fatalf("can't overwrite value: %v", err)
	}
	value, _ = kv.Get(ctx, "project_1_abc")
	if string(value) != `{"id":"project_1_abc","progress":40}` {
		t.Errorf("Expected overwritten value, got: %s", value)
	}
	if kv.Len() != 1 {
		t.Errorf("Expected 1 key, got: %d", kv.Len())
	}
}

func TestMemoryDel(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	if err := kv.Set(ctx, "dedup_tok-1", []byte(`{}`)); err != nil {
		t.Fatalf("can't set value: %v", err)
	}
	if err := kv.Del(ctx, "dedup_tok-1"); err != nil {
		t.Fatalf("can't delete value: %v", err)
	}
	if _, err := kv.Get(ctx, "dedup_tok-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got: %v", err)
	}

	// deleting a missing key is a no-op
	if err := kv.Del(ctx, "dedup_tok-2"); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestMemoryGetByPrefix(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	records := map[string]string{
		"project_1_abc": `{"id":"project_1_abc"}`,
		"project_2_def": `{"id":"project_2_def"}`,
		"order_1_abc":   `{"id":"order_1_abc"}`,
		"ticket_1_abc":  `{"id":"ticket_1_abc"}`,
	}
	for key, value := range records {
		if err := kv.Set(ctx, key, []byte(value)); err != nil {
			t.Fatalf("can't set value: %v", err)
		}
	}

	testCases := []struct {
		TestName string
		Prefix   string
		Expected int
	}{
		{"Projects only #1", ProjectKeyPrefix, 2},
		{"Orders only #2", OrderKeyPrefix, 1},
		{"No matches #3", DedupKeyPrefix, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			values, err := kv.GetByPrefix(ctx, tc.Prefix)
			if err != nil {
				t.Fatalf("can't scan prefix: %v", err)
			}
			if len(values) != tc.Expected {
				t.Errorf("Expected %d values, got: %d", tc.Expected, len(values))
			}
		})
	}
}
