// Package store provides whole-collection persistence for the marketplace
// entities. Load methods never surface storage errors: an uninitialized or
// unreadable backend reads as an empty collection so discovery queries
// degrade to "no results" instead of failing. Save methods fully replace the
// prior contents of a collection; concurrent writers race last-write-wins
// and the store adds no locking of its own.
package store

import (
	"context"

	"github.com/snapwork/snapwork/internal/models"
)

// Collection names, shared by both backends.
const (
	CollectionGigs         = "gigs"
	CollectionUsers        = "users"
	CollectionReviews      = "reviews"
	CollectionApplications = "applications"
)

type Store interface {
	LoadGigs(ctx context.Context) []models.Gig
	SaveGigs(ctx context.Context, gigs []models.Gig) error

	LoadUsers(ctx context.Context) []models.User
	SaveUsers(ctx context.Context, users []models.User) error

	LoadReviews(ctx context.Context) []models.Review
	SaveReviews(ctx context.Context, reviews []models.Review) error

	LoadApplications(ctx context.Context) []models.Application
	SaveApplications(ctx context.Context, applications []models.Application) error

	Health(ctx context.Context) error
}
