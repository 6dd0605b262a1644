package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/snapwork/snapwork/internal/models"
)

// FileStore keeps one JSON file per collection under a data directory. It is
// the default backend and assumes a single writer at a time.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and seeds the gig
// collection with the demo data set on first run.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	fs := &FileStore{dir: dir}

	if _, err := os.Stat(fs.path(CollectionGigs)); os.IsNotExist(err) {
		if err := fs.write(CollectionGigs, SeedGigs()); err != nil {
			return nil, err
		}
	}
	for _, collection := range []string{CollectionUsers, CollectionReviews, CollectionApplications} {
		if _, err := os.Stat(fs.path(collection)); os.IsNotExist(err) {
			if err := fs.write(collection, []struct{}{}); err != nil {
				return nil, err
			}
		}
	}

	return fs, nil
}

func (fs *FileStore) path(collection string) string {
	return filepath.Join(fs.dir, collection+".json")
}

// read unmarshals a collection file into out. Missing or corrupt files read
// as empty so callers see "no records" rather than an error.
func (fs *FileStore) read(collection string, out interface{}) {
	data, err := os.ReadFile(fs.path(collection))
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("store: unreadable %s collection, treating as empty: %v", collection, err)
	}
}

func (fs *FileStore) write(collection string, records interface{}) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}

	// Write-then-rename so a crash mid-write never truncates the collection.
	tmp := fs.path(collection) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return os.Rename(tmp, fs.path(collection))
}

func (fs *FileStore) LoadGigs(ctx context.Context) []models.Gig {
	gigs := []models.Gig{}
	fs.read(CollectionGigs, &gigs)
	return gigs
}

func (fs *FileStore) SaveGigs(ctx context.Context, gigs []models.Gig) error {
	return fs.write(CollectionGigs, gigs)
}

func (fs *FileStore) LoadUsers(ctx context.Context) []models.User {
	users := []models.User{}
	fs.read(CollectionUsers, &users)
	return users
}

func (fs *FileStore) SaveUsers(ctx context.Context, users []models.User) error {
	return fs.write(CollectionUsers, users)
}

func (fs *FileStore) LoadReviews(ctx context.Context) []models.Review {
	reviews := []models.Review{}
	fs.read(CollectionReviews, &reviews)
	return reviews
}

func (fs *FileStore) SaveReviews(ctx context.Context, reviews []models.Review) error {
	return fs.write(CollectionReviews, reviews)
}

func (fs *FileStore) LoadApplications(ctx context.Context) []models.Application {
	applications := []models.Application{}
	fs.read(CollectionApplications, &applications)
	return applications
}

func (fs *FileStore) SaveApplications(ctx context.Context, applications []models.Application) error {
	return fs.write(CollectionApplications, applications)
}

func (fs *FileStore) Health(ctx context.Context) error {
	_, err := os.Stat(fs.dir)
	return err
}
