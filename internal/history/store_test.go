package history

import (
	"context"
	"reflect"
	"testing"
)

func TestStoreAppendPersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	cat := testCatalog()

	store, err := NewStore(ctx, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, err := store.Append(ctx, testCart(cat), cat)
	if err != nil || rec == nil {
		t.Fatalf("append failed: rec=%v err=%v", rec, err)
	}

	// a second store over the same repository sees the same records
	reloaded, err := NewStore(ctx, repo)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reflect.DeepEqual(store.Records(), reloaded.Records()) {
		t.Fatalf("round-trip mismatch:\n%+v\n%+v", store.Records(), reloaded.Records())
	}
}

func TestStoreAppendEmptyCartDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	store, _ := NewStore(ctx, repo)

	rec, err := store.Append(ctx, nil, testCatalog())
	if err != nil || rec != nil {
		t.Fatalf("empty append: rec=%v err=%v", rec, err)
	}
	if len(store.Records()) != 0 {
		t.Fatal("history must stay empty")
	}
}

func TestStoreRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	cat := testCatalog()
	store, _ := NewStore(ctx, repo)

	rec, _ := store.Append(ctx, testCart(cat), cat)

	if err := store.Remove(ctx, rec.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(store.Records()) != 0 {
		t.Fatal("record not removed")
	}

	if err := store.Remove(ctx, "ghost"); err != nil {
		t.Fatalf("removing unknown id must succeed: %v", err)
	}
}

func TestStoreLoadCorruptDocumentResetsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()
	repo.doc = []byte(`{"this is": not even json`)

	store, err := NewStore(ctx, repo)
	if err != nil {
		t.Fatalf("corrupt state must not error: %v", err)
	}
	if len(store.Records()) != 0 {
		t.Fatal("corrupt state must reset to empty")
	}
}
