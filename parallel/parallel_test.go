package parallel

import (
	"context"
	"testing"

	"github.com/johnietre/snaplist"
)

func TestBulkAppendAllValuesLand(t *testing.T) {
	l := snaplist.New[int]()
	values := make([]int, 1000)
	for i := range values {
		values[i] = i
	}
	if err := BulkAppend(context.Background(), l, values, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != uint64(len(values)) {
		t.Fatalf("expected len %d, got %d", len(values), l.Len())
	}
	seen := make(map[int]bool, len(values))
	it := l.Iter()
	it.ForEach(func(v int) bool {
		seen[v] = true
		return true
	})
	for _, v := range values {
		if !seen[v] {
			t.Fatalf("value %d missing from list", v)
		}
	}
}

func TestBulkAppendMoreWorkersThanValues(t *testing.T) {
	l := snaplist.New[int]()
	values := []int{1, 2, 3}
	if err := BulkAppend(context.Background(), l, values, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("expected len 3, got %d", l.Len())
	}
}

func TestBulkAppendEmptyValues(t *testing.T) {
	l := snaplist.New[int]()
	if err := BulkAppend(context.Background(), l, nil, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != 0 {
		t.Fatalf("expected len 0, got %d", l.Len())
	}
}

func TestBulkAppendCanceledContext(t *testing.T) {
	l := snaplist.New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	values := make([]int, 100)
	err := BulkAppend(ctx, l, values, 4)
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
}

func TestShardSizeNeverZero(t *testing.T) {
	if got := ShardSize(0, 4); got < 1 {
		t.Fatalf("expected shard size >= 1, got %d", got)
	}
	if got := ShardSize(10, 0); got < 1 {
		t.Fatalf("expected shard size >= 1, got %d", got)
	}
}
