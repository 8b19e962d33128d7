package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	ctx := context.Background()

	want := &IndustryProfile{
		Industry:            "Construction",
		CompanyName:         "BuildRight LLC",
		CompanySize:         "11-50",
		DocumentPreferences: []string{"scope_of_work", "invoice"},
		BrandColors:         BrandColors{Primary: "#AA3311", Secondary: "#221100"},
	}
	if err := store.Put(ctx, "user-1", want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	_, err = store.Get(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreRejectsPathTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	for _, id := range []string{"", "../escape", "a/b", `a\b`} {
		if _, err := store.Get(context.Background(), id); err == nil {
			t.Errorf("Get(%q) accepted an invalid user id", id)
		}
	}
}
