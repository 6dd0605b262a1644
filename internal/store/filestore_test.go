package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/snapwork/snapwork/internal/models"
)

func TestNewFileStoreSeedsGigs(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	gigs := fs.LoadGigs(context.Background())
	if len(gigs) != 12 {
		t.Fatalf("seeded %d gigs, want 12", len(gigs))
	}

	cleaning := 0
	for _, g := range gigs {
		if g.Category == "cleaning" {
			cleaning++
		}
		if g.Status != models.GigStatusOpen {
			t.Errorf("seed gig %d has status %q", g.ID, g.Status)
		}
	}
	if cleaning != 4 {
		t.Errorf("seed set has %d cleaning gigs, want 4", cleaning)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	users := []models.User{
		{ID: 1, Name: "Ravi", Email: "ravi@example.com", Password: "x", UserType: models.UserTypeWorker, CreatedAt: time.Now().UTC()},
	}
	if err := fs.SaveUsers(ctx, users); err != nil {
		t.Fatalf("SaveUsers: %v", err)
	}

	got := fs.LoadUsers(ctx)
	if len(got) != 1 || got[0].Email != "ravi@example.com" {
		t.Fatalf("LoadUsers = %+v", got)
	}
	if got[0].Password != "x" {
		t.Error("file store must round-trip the stored credential")
	}
}

func TestFileStoreSaveReplacesContents(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := fs.SaveGigs(ctx, []models.Gig{{ID: 99, Title: "Only One", Payment: "₹100", CreatedAt: time.Now()}}); err != nil {
		t.Fatalf("SaveGigs: %v", err)
	}

	gigs := fs.LoadGigs(ctx)
	if len(gigs) != 1 || gigs[0].ID != 99 {
		t.Fatalf("save did not replace prior contents: %d gigs", len(gigs))
	}
}

func TestFileStoreUnreadableReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(dir, "reviews.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := fs.LoadReviews(ctx); len(got) != 0 {
		t.Errorf("corrupt collection read %d reviews, want 0", len(got))
	}

	if err := os.Remove(filepath.Join(dir, "applications.json")); err != nil {
		t.Fatal(err)
	}
	if got := fs.LoadApplications(ctx); len(got) != 0 {
		t.Errorf("missing collection read %d applications, want 0", len(got))
	}
}
